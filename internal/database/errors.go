package database

import "errors"

// ErrNoSnapshot indicates the database holds no saved board yet
var ErrNoSnapshot = errors.New("no board snapshot saved")
