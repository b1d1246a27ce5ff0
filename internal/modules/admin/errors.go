package admin

import "errors"

var ErrBadCredentials = errors.New("invalid credentials")
