// Copyright 2017 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//      http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

//go:build ignore

// mockgen wraps the mockgen tool so that generated mocks carry the license
// header. Usage:
//
//	go run scripts/mockgen.go PACKAGE INTERFACE_NAMES OUTPUT_FILE
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	copyrightHeaderFormat = "// Copyright %v Amazon.com, Inc. or its affiliates. All Rights Reserved."
	licenseBlock          = `
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//     http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

`
)

func main() {
	if len(os.Args) != 4 {
		usage()
		os.Exit(1)
	}
	packageName := os.Args[1]
	interfaces := os.Args[2]
	outputPath := os.Args[3]

	copyrightHeader := fmt.Sprintf(copyrightHeaderFormat, time.Now().Year())

	path, _ := filepath.Split(outputPath)
	if path != "" {
		if err := os.MkdirAll(path, os.ModeDir|0755); err != nil {
			printErrorAndExitWithErrorCode(err)
		}
	}

	mockgen := exec.Command("go", "run", "github.com/golang/mock/mockgen", packageName, interfaces)
	mockgenOut, err := mockgen.Output()
	if err != nil {
		printErrorAndExitWithErrorCode(
			fmt.Errorf("error running mockgen for package '%s' and interfaces '%s': %v", packageName, interfaces, err))
	}

	var out bytes.Buffer
	out.WriteString(copyrightHeader)
	out.WriteString(licenseBlock)
	out.Write(mockgenOut)

	if err := os.WriteFile(outputPath, out.Bytes(), 0644); err != nil {
		printErrorAndExitWithErrorCode(err)
	}
}

func usage() {
	fmt.Println(os.Args[0], " PACKAGE INTERFACE_NAMES OUTPUT_FILE")
}

func printErrorAndExitWithErrorCode(err error) {
	fmt.Println(err)
	os.Exit(1)
}
