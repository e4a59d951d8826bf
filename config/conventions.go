package config

import "strings"

// TagSet is the list of task-tag words carved out of comment text,
// such as TODO or FIXME. Matching is whole-word: a tag surrounded by
// word characters is not a tag.
type TagSet struct {
	// Tags are the recognized words.
	Tags []string

	// CaseSensitive requires an exact case match. When false, todo
	// matches TODO.
	CaseSensitive bool
}

// DefaultTagSet returns the conventional case-sensitive task tags.
func DefaultTagSet() TagSet {
	return TagSet{
		Tags:          []string{"TODO", "FIXME", "XXX"},
		CaseSensitive: true,
	}
}

// Match reports whether word is one of the tags.
func (t TagSet) Match(word string) bool {
	for _, tag := range t.Tags {
		if t.CaseSensitive {
			if word == tag {
				return true
			}
		} else if strings.EqualFold(word, tag) {
			return true
		}
	}
	return false
}

// Empty reports whether the set has no tags.
func (t TagSet) Empty() bool {
	return len(t.Tags) == 0
}

// clone returns a deep copy so a Config holds its own tag slice.
func (t TagSet) clone() TagSet {
	out := t
	out.Tags = make([]string, len(t.Tags))
	copy(out.Tags, t.Tags)
	return out
}

// Conventions hold host-ecosystem settings that are not part of the
// language grammar, such as which task tags the project uses.
type Conventions struct {
	// TaskTags are the comment words reported as task tags.
	TaskTags TagSet
}

// DefaultConventions returns conventions with the default tag set.
func DefaultConventions() Conventions {
	return Conventions{TaskTags: DefaultTagSet()}
}
