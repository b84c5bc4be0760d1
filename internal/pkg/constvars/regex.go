package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexHTTPURL                      = `^https?://`
	RegexSlugInvalidChars             = `[^a-z0-9]+`
	RegexBase64DataURIPrefix          = `^data:image/([a-zA-Z0-9.+-]+);base64,`
)
