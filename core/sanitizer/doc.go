// Package sanitizer cleans user-entered text before it is sent to the backend.
//
// StripEmoji keeps printable Latin, CJK and fullwidth characters plus a few
// common punctuation marks, and drops everything else, including emoji,
// pictographs and every kind of whitespace:
//
//	nick := sanitizer.StripEmoji("小明 😀 Ming") // "小明Ming"
package sanitizer
