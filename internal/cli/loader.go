package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/attest/internal/suite"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No suite files found
	ErrCodeParseFailed = "E004" // YAML/CUE parse failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeInvalid     = "E006" // Suite failed validation
)

// LoadError represents an error that occurred during suite loading.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadResult contains the suites loaded from a path.
type LoadResult struct {
	Suites    []*suite.Suite
	FileCount int // Number of suite files found
}

// LoadSuites loads test suites from a path. A directory is walked for
// .yaml, .yml and .cue files; a single file is loaded directly. Every
// suite is validated, and all errors are collected rather than stopping
// at the first.
func LoadSuites(path string) (*LoadResult, []error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("path not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing path: %v", err)}}
	}

	var files []string
	if info.IsDir() {
		files, err = FindSuiteFiles(path)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
		}
		if len(files) == 0 {
			return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no suite files found in %s", path)}}
		}
	} else {
		files = []string{path}
	}

	result := &LoadResult{FileCount: len(files)}
	var errs []error
	for _, file := range files {
		s, fileErrs := loadSuiteFile(file)
		if len(fileErrs) > 0 {
			errs = append(errs, fileErrs...)
			continue
		}
		result.Suites = append(result.Suites, s)
	}
	return result, errs
}

// FindSuiteFiles walks the directory and returns all suite file paths,
// sorted for deterministic run order.
func FindSuiteFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml", ".cue":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// loadSuiteFile decodes one suite file and collects every validation
// error it has.
func loadSuiteFile(path string) (*suite.Suite, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}}
	}

	var s *suite.Suite
	if filepath.Ext(path) == ".cue" {
		s, err = decodeCUE(path, data)
	} else {
		s, err = suite.Decode(data)
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeParseFailed, Path: path, Message: err.Error()}}
	}

	var errs []error
	for _, verr := range suite.Validate(s) {
		errs = append(errs, &LoadError{Code: ErrCodeInvalid, Path: path, Message: verr.Error()})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

// decodeCUE evaluates one CUE file and decodes the resulting value into a
// suite. The file must evaluate to a single concrete suite object.
func decodeCUE(path string, data []byte) (*suite.Suite, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("CUE value not concrete: %w", err)
	}

	var s suite.Suite
	if err := value.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding CUE value: %w", err)
	}
	return &s, nil
}
