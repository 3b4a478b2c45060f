/*
Copyright 2025 the Stratocloud Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package volumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/onsi/ginkgo/v2"
)

// Result captures one CLI execution.
type Result struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes a CLI invocation. The default implementation shells
// nothing: the argv goes straight to the binary, so values never pass
// through a shell.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) (*Result, error)
}

type execRunner struct {
	logCommands bool
}

// NewRunner returns the exec-backed runner.
func NewRunner(logCommands bool) Runner {
	return &execRunner{logCommands: logCommands}
}

func (r *execRunner) Run(ctx context.Context, binary string, args []string) (*Result, error) {
	if r.logCommands {
		ginkgo.GinkgoWriter.Printf("Running: %s %s\n", binary, strings.Join(maskSecrets(args), " "))
	}

	cmd := exec.CommandContext(ctx, binary, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := &Result{Args: args}

	err := cmd.Run()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}

		return nil, fmt.Errorf("running %s: %w", binary, err)
	}

	return result, nil
}

// maskSecrets hides credential flag values in logged invocations.
func maskSecrets(args []string) []string {
	masked := make([]string, len(args))
	copy(masked, args)

	for i, arg := range masked {
		if arg == "--os-password" && i+1 < len(masked) {
			masked[i+1] = "*****"
		}
	}

	return masked
}
