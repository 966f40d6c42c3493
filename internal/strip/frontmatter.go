package strip

import "bytes"

// FrontMatter splits YAML front matter delimited by "---\n" off the
// beginning of source. It returns the front matter block (including
// delimiters) and the remaining content. If no front matter is found,
// meta is nil and body equals source.
func FrontMatter(source []byte) (meta, body []byte) {
	delim := []byte("---\n")
	if !bytes.HasPrefix(source, delim) {
		return nil, source
	}
	rest := source[len(delim):]
	idx := bytes.Index(rest, delim)
	if idx < 0 {
		return nil, source
	}
	end := len(delim) + idx + len(delim)
	return source[:end], source[end:]
}
