package config

import (
	"github.com/ezrec/ffa/translate"
)

var f = translate.From

type ErrProfileType struct {
	Name string
	Want string
}

func (err ErrProfileType) Error() string {
	return f("profile: '%v' must be a %v", err.Name, err.Want)
}

type ErrProfileCatalog struct {
	Name string
	Err  error
}

func (err ErrProfileCatalog) Error() string {
	return f("profile: %v: %v", err.Name, err.Err)
}

func (err ErrProfileCatalog) Unwrap() error {
	return err.Err
}
