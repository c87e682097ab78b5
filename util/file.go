// Copyright 2019 - 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateOutputFile creates the file at path including missing parent
// directories. An existing file is truncated if overwrite is set. Otherwise
// the returned error wraps os.ErrExist.
func CreateOutputFile(path string, overwrite bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("could not create the directory of the output file %s: %w", path, err)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	outputFile, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("the output file %s does already exist: %w", path, os.ErrExist)
		}
		return nil, fmt.Errorf("could not open/create the output file %s: %w", path, err)
	}
	return outputFile, nil
}
