// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package opts

import (
	"fmt"

	"github.com/DavidGamba/go-opts/text"
)

// GetRequiredArg - Get the next argument from the args list and error if it doesn't exist.
// args is expected in command line order, for example: Result.Positional().
//
// If a name is given, the error will include it.
func GetRequiredArg(args []string, name ...string) (string, []string, error) {
	if len(args) < 1 {
		if len(name) > 0 && name[0] != "" {
			return "", args, fmt.Errorf(text.ErrorMissingRequiredNamedArgument+"%w", name[0], ErrorMissingRequiredArgument)
		}
		return "", args, fmt.Errorf(text.ErrorMissingRequiredArgument+"%w", ErrorMissingRequiredArgument)
	}
	return args[0], args[1:], nil
}
