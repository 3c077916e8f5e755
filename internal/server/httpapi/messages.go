package httpapi

// Client-facing messages.
const (
	msgInternal             = "Internal server error"
	msgCredentialsRequired  = "Username and password are required"
	msgUsernameTaken        = "Username already exists"
	msgUserCreated          = "User created successfully"
	msgLoginSuccessful      = "Login successful"
	msgInvalidCredentials   = "Invalid credentials"
	msgNoToken              = "Access denied. No token provided or invalid format."
	msgTokenExpired         = "Token has expired"
	msgInvalidToken         = "Invalid token"
	msgAuthServerError      = "Server error during authentication"
	msgFetchFilesFailed     = "Failed to fetch files"
	msgFileNotFound         = "File not found"
	msgDeleteForbidden      = "You don't have permission to delete this file"
	msgFileDeleted          = "File deleted successfully"
	msgDeleteFailed         = "Failed to delete file"
	msgFilenameRequired     = "Filename is required"
	msgUploadURLGenerated   = "Upload URL generated successfully"
	msgUploadURLFailed      = "Failed to generate upload URL"
	msgConfirmFieldsMissing = "Filename, size, and key are required"
	msgFileSaved            = "File metadata saved successfully"
	msgFileSaveFailed       = "Failed to save file metadata"
	msgMetricsFailed        = "Failed to fetch metrics"
	msgNotFound             = "Not found"
)
