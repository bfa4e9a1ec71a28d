package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the loaders. Compare with errors.Is.
var (
	// ErrMissingColumn indicates the source lacks a required header column.
	ErrMissingColumn = constError("missing required column")

	// ErrEmptySource indicates the source has no header row.
	ErrEmptySource = constError("reference table source is empty")

	// ErrUnsupportedFormat indicates a file extension no loader handles.
	ErrUnsupportedFormat = constError("unsupported reference table format")

	// ErrNoSheet indicates the workbook has no sheet to read.
	ErrNoSheet = constError("workbook has no sheets")
)
