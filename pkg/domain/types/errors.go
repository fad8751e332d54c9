package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidArgument          = goerr.New("invalid argument")
	ErrNotRepository            = goerr.New("not a repository")
	ErrConfigMissing            = goerr.New("configuration file missing")
	ErrUnsupportedFormatVersion = goerr.New("unsupported repository format version")
	ErrPathBlocked              = goerr.New("not a directory")
	ErrNotEmpty                 = goerr.New("directory not empty")
	ErrRepositoryNotFound       = goerr.New("repository not found")
)
