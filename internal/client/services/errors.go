package services

import (
	"errors"

	"github.com/dmitrijs2005/sealnotes/internal/common"
)

var (
	ErrInvalidCredentials = common.ErrInvalidCredentials
	ErrRegistrationFailed = errors.New("registration failed")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrTitleRequired      = errors.New("title is required")
	ErrUnknownMode        = errors.New("unknown mode")
	ErrNotDrawingMode     = errors.New("switch to drawing mode first")
	ErrSubmitInProgress   = errors.New("a note is already being saved")
)
