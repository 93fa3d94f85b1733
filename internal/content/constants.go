package content

import "time"

// http and network timeouts
const (
	DefaultHTTPTimeout = 30 * time.Second
	OpenAIHTTPTimeout  = 2 * time.Minute
	MusicHTTPTimeout   = 5 * time.Minute
)

// content processing limits
const (
	MaxArticleContentLength = 8000
	DisplayTruncateLength   = 50
	WikipediaResults        = 3
)

// script generation parameters
const (
	DefaultSegments    = 10
	RewriteTemperature = 0.7
	RewriteMaxTokens   = 4096
)

// text processing constants
const (
	avgCharsPerWordEnglish   = 4.7
	avgWordsPerMinuteEnglish = 150.0
)

// audio processing
const (
	LinePause         = 400 * time.Millisecond
	IntroFade         = 1500 * time.Millisecond
	IntroDuration     = 7 * time.Second
	IntroDescription  = "soothing and rhythmic music inspired by "
	NoRevisionMessage = "No revision was generated. Please check the input script and try again."
)
