package commands

const (
	_etc = "/usr/local/etc/gradebook"
	_var = "/usr/local/var/gradebook"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
