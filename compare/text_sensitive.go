//go:build text_case_sensitive

package compare

const defaultCaseSensitive = true
