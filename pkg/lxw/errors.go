package lxw

import (
	"errors"
	"os"
	"strings"
)

// Error is a result code from the boundary's closed enumeration.
// Zero always means success.
type Error int

// Result codes. The numeric values are part of the ABI and must not change.
const (
	NoError                        Error = 0
	ErrMemoryMallocFailed          Error = 1
	ErrCreatingXlsxFile            Error = 2
	ErrCreatingTmpfile             Error = 3
	ErrReadingTmpfile              Error = 4
	ErrZipFileOperation            Error = 5
	ErrZipParameterError           Error = 6
	ErrZipBadZipFile               Error = 7
	ErrZipInternalError            Error = 8
	ErrZipFileAdd                  Error = 9
	ErrZipClose                    Error = 10
	ErrFeatureNotSupported         Error = 11
	ErrNullParameterIgnored        Error = 12
	ErrParameterValidation         Error = 13
	ErrParameterIsEmpty            Error = 14
	ErrSheetnameLengthExceeded     Error = 15
	ErrInvalidSheetnameCharacter   Error = 16
	ErrSheetnameStartEndApostrophe Error = 17
	ErrSheetnameAlreadyUsed        Error = 18
	Err32StringLengthExceeded      Error = 19
	Err128StringLengthExceeded     Error = 20
	Err255StringLengthExceeded     Error = 21
	ErrMaxStringLengthExceeded     Error = 22
	ErrSharedStringIndexNotFound   Error = 23
	ErrWorksheetIndexOutOfRange    Error = 24
	ErrMaxURLLengthExceeded        Error = 25
	ErrMaxNumberURLsExceeded       Error = 26
	ErrImageDimensions             Error = 27
)

var errorStrings = map[Error]string{
	NoError:                        "No error.",
	ErrMemoryMallocFailed:          "Memory error, failed to malloc() required memory.",
	ErrCreatingXlsxFile:            "Error creating output xlsx file. Usually a permissions error.",
	ErrCreatingTmpfile:             "Error encountered when creating a tmpfile during file assembly.",
	ErrReadingTmpfile:              "Error reading a tmpfile.",
	ErrZipFileOperation:            "Zip generic error ZIP_ERRNO while creating the xlsx file.",
	ErrZipParameterError:           "Zip error ZIP_PARAMERROR while creating the xlsx file.",
	ErrZipBadZipFile:               "Zip error ZIP_BADZIPFILE (general error) while creating the xlsx file.",
	ErrZipInternalError:            "Zip error ZIP_INTERNALERROR while creating the xlsx file.",
	ErrZipFileAdd:                  "Zip error while adding a file to the xlsx file.",
	ErrZipClose:                    "Zip error while closing the xlsx file.",
	ErrFeatureNotSupported:         "Feature is not currently supported in this configuration.",
	ErrNullParameterIgnored:        "NULL function parameter ignored.",
	ErrParameterValidation:         "Function parameter validation error.",
	ErrParameterIsEmpty:            "Function parameter is empty.",
	ErrSheetnameLengthExceeded:     "Worksheet name exceeds Excel's limit of 31 characters.",
	ErrInvalidSheetnameCharacter:   "Worksheet name cannot contain invalid characters: '[ ] : * ? / \\'",
	ErrSheetnameStartEndApostrophe: "Worksheet name cannot start or end with an apostrophe.",
	ErrSheetnameAlreadyUsed:        "Worksheet name is already in use.",
	Err32StringLengthExceeded:      "Parameter exceeds Excel's limit of 32 characters.",
	Err128StringLengthExceeded:     "Parameter exceeds Excel's limit of 128 characters.",
	Err255StringLengthExceeded:     "Parameter exceeds Excel's limit of 255 characters.",
	ErrMaxStringLengthExceeded:     "String exceeds Excel's limit of 32,767 characters.",
	ErrSharedStringIndexNotFound:   "Error finding internal string index.",
	ErrWorksheetIndexOutOfRange:    "Worksheet row or column index out of range.",
	ErrMaxURLLengthExceeded:        "Maximum hyperlink length (2079) exceeded.",
	ErrMaxNumberURLsExceeded:       "Maximum number of worksheet URLs (65530) exceeded.",
	ErrImageDimensions:             "Couldn't read image dimensions or DPI.",
}

// Error implements the error interface. NoError reports "No error." and
// should be filtered by callers checking err != nil semantics; at the
// boundary only the integer code matters.
func (e Error) Error() string {
	return Strerror(e)
}

// Strerror returns the descriptive string for a result code, mirroring
// lxw_strerror. Unknown codes report a generic message.
func Strerror(code Error) string {
	if s, ok := errorStrings[code]; ok {
		return s
	}
	return "Unknown error number."
}

// Code converts an engine error into a boundary result code. Error
// values pass through; anything else is classified by inspection of
// the underlying failure.
func Code(err error) Error {
	if err == nil {
		return NoError
	}
	var code Error
	if errors.As(err, &code) {
		return code
	}
	if errors.Is(err, os.ErrPermission) || errors.Is(err, os.ErrNotExist) {
		return ErrCreatingXlsxFile
	}
	// excelize reports coordinate and sheet name problems as plain
	// errors; recognize the common ones so the boundary stays close to
	// the original code assignments.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "sheet name"):
		return ErrInvalidSheetnameCharacter
	case strings.Contains(msg, "coordinates"), strings.Contains(msg, "cell"):
		return ErrWorksheetIndexOutOfRange
	case strings.Contains(msg, "image"), strings.Contains(msg, "picture"):
		return ErrImageDimensions
	case strings.Contains(msg, "zip"):
		return ErrZipFileOperation
	}
	return ErrParameterValidation
}
