package model

import "pteguide_backend/internals/constants"

// DifficultyFromTags derives the single-valued difficulty of a content item
// from its many-valued tag set. Precedence follows constants.DifficultyLevels,
// not tag ordering: Beginner beats Intermediate beats Advanced.
func DifficultyFromTags(tags []TagModel) string {
	for _, level := range constants.DifficultyLevels {
		for _, tag := range tags {
			if tag.Name == level {
				return level
			}
		}
	}
	return ""
}
