// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/setdiff/setdiff/internal/filters"
	"github.com/setdiff/setdiff/internal/report"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !report.ValidFormat(s) {
		return fmt.Errorf("must be one of %v", report.Formats)
	}
	return nil
}

func ParallelValidator(value any) error {
	n, ok := value.(int)
	if !ok || n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

// KeyValidator rejects key templates that do not parse.
func KeyValidator(value any) error {
	s, _ := value.(string)
	if _, err := keyFunc(s); err != nil {
		return err
	}
	return nil
}

// FilterValidator rejects --filter expressions that do not parse.
func FilterValidator(value any) error {
	s, _ := value.(string)
	_, err := filters.Parse(s)
	return err
}
