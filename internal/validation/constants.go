package validation

// Schema locations, relative to the repository root
const (
	SchemaPathJackpots = "configs/schemas/jackpots.schema.json"
)

// Error context messages
const (
	ErrContextReadDataFile  = "failed to read data file"
	ErrContextLoadSchema    = "failed to load schema"
	ErrContextParseData     = "failed to parse JSON data"
	ErrContextReadSchema    = "failed to read schema file"
	ErrContextParseSchema   = "failed to parse schema JSON"
	ErrContextAddSchema     = "failed to add schema resource"
	ErrContextCompileSchema = "failed to compile schema"
	ErrContextGetwd         = "failed to get current directory"
	ErrMsgSchemaNotFound    = "schema file not found"
	ErrMsgSchemaValidation  = "schema validation failed"
	ErrMsgValidationFailed  = "validation failed"
	LocationRoot            = "(root)"
	goModFile               = "go.mod"
)
