// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"errors"
	"fmt"
)

// ErrCityNotFound is matched by every [CityNotFoundError].
var ErrCityNotFound = errors.New("city not found")

// CityNotFoundError reports a city name missing from the registry.
type CityNotFoundError struct {
	Name string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("could not find the specified city: %s", e.Name)
}

// Is makes errors.Is(err, ErrCityNotFound) succeed.
func (e *CityNotFoundError) Is(target error) bool {
	return target == ErrCityNotFound
}
