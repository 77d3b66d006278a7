package common

import (
	"errors"
	"fmt"

	"github.com/edugestion/sgc-api/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}

func Combine(errs ...error) error {
	var result error
	for _, err := range errs {
		if err != nil {
			if result == nil {
				result = err
			} else {
				result = fmt.Errorf("%v, %v", result, err)
			}
		}
	}
	return result
}
