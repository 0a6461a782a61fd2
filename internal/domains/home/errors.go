package home

import "errors"

var ErrHomeTextNotFound = errors.New("home text not found")
