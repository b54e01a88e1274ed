package domain

// Default limits and analyzer settings. Kept in the domain package as the
// single source of truth for config defaults and the init template.
const (
	// DefaultMaxFileSize caps the size of analyzable files (10 MB)
	DefaultMaxFileSize = 10 * 1024 * 1024

	// DefaultCommonWordCount is the length of the common-word ranking
	DefaultCommonWordCount = 5

	// DefaultMinWordLength is the minimum token length counted as a word
	DefaultMinWordLength = 3

	// DefaultSniffSampleSize is the number of characters used for
	// delimiter sniffing
	DefaultSniffSampleSize = 1024

	// DefaultSampleValueCount is the number of raw sample values kept per
	// column
	DefaultSampleValueCount = 3

	// DefaultSampleKeyCount is the number of root keys or item type tags
	// kept in a structural summary
	DefaultSampleKeyCount = 10
)

// DefaultOutputFormat is the report representation used when none is chosen
const DefaultOutputFormat = OutputFormatText

// DefaultSupportedTypes maps file categories to the extensions classified
// under them. Extensions not listed fall into CategoryUnknown.
func DefaultSupportedTypes() map[FileCategory][]string {
	return map[FileCategory][]string{
		CategoryText:     {".txt", ".py", ".js", ".html", ".css", ".md", ".json", ".xml", ".csv"},
		CategoryImage:    {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg"},
		CategoryDocument: {".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx"},
		CategoryArchive:  {".zip", ".rar", ".tar", ".gz", ".7z"},
	}
}

// DefaultAnalyzeRequest returns a request populated with default values
func DefaultAnalyzeRequest() AnalyzeRequest {
	return AnalyzeRequest{
		OutputFormat: DefaultOutputFormat,
		MaxFileSize:  DefaultMaxFileSize,
	}
}
