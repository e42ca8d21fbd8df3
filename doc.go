// Copyright 2026 gradebook-app-sheets authors. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package gradebook-app-sheets calculates student grades and status for a class roster kept in a Google Sheets worksheet.

gradebook-app-sheets is intended to be run once per grading cycle, either from the command line or from a cron job.
It retrieves the roster, calculates each student's average from the three grade columns, classifies the student as
approved, final exam, failed by grade or failed by attendance and writes the status and the final exam grade required
to pass back to the worksheet.

gradebook-app-sheets supports the following commands:

  - grade, to calculate the student status and update the worksheet
  - get, to download the roster and calculated status as a TSV file
  - authorise, to authorise application access to the Google Sheets worksheet with OAuth client credentials
  - version, to display the application version
*/
package sheets
