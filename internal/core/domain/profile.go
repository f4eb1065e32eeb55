package domain

import "strings"

// ProfileSeparator joins per-researcher profile documents into the single
// combined document uploaded to the scoped store. Downstream consumers split
// on this exact sequence; it is a parsing contract, not cosmetic.
const ProfileSeparator = "\n---\n"

// JoinProfiles concatenates per-researcher documents with ProfileSeparator.
func JoinProfiles(docs []string) string {
	return strings.Join(docs, ProfileSeparator)
}

// SplitProfiles splits a combined document back into per-researcher
// documents. JoinProfiles followed by SplitProfiles yields the input
// unchanged.
func SplitProfiles(combined string) []string {
	return strings.Split(combined, ProfileSeparator)
}
