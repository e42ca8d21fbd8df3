package commands

const (
	_etc = `C:\ProgramData\gradebook`
	_var = `C:\ProgramData\gradebook\var`

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + `\.google\credentials.json`
)
