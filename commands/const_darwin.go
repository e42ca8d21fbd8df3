package commands

const (
	_etc = "/usr/local/etc/com.github.gradebook"
	_var = "/usr/local/var/com.github.gradebook"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
