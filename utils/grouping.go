package utils

import (
	"sort"
	"strconv"
	"strings"

	"coursehub/models"
)

// GroupedBlock holds the materials of one block inside a grouped result set.
type GroupedBlock struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Materials []models.Material `json:"materials"`
}

// GroupedTopic holds the blocks of one topic inside a grouped result set.
// Slices keep first-seen order so the JSON output order is deterministic.
type GroupedTopic struct {
	Slug   string          `json:"slug"`
	Name   string          `json:"name"`
	Blocks []*GroupedBlock `json:"blocks"`
}

// GroupMaterialsByTopicAndBlocks reshapes a flat material list into the
// nested topic -> block -> materials structure used by the results page.
// Topics and blocks appear in the order they are first seen in the input.
// Materials with missing ancestry land under sentinel "unknown" groups
// instead of failing the whole result set.
func GroupMaterialsByTopicAndBlocks(materials []models.Material) []*GroupedTopic {
	grouped := []*GroupedTopic{}
	topicIndex := make(map[string]*GroupedTopic)
	blockIndex := make(map[string]*GroupedBlock)

	for _, material := range materials {
		topicName := "Unknown Topic"
		topicSlug := "unknown"
		blockName := "Unknown Block"
		blockID := "unknown"

		if material.Lesson != nil && material.Lesson.Block != nil {
			block := material.Lesson.Block
			if block.Name != "" {
				blockName = block.Name
			}
			blockID = strconv.FormatUint(uint64(block.ID), 10)

			if block.Topic != nil {
				topic := block.Topic
				if topic.Name != "" {
					topicName = topic.Name
				}
				if topic.Slug != "" {
					topicSlug = topic.Slug
				}
			}
		}

		topicGroup, ok := topicIndex[topicSlug]
		if !ok {
			topicGroup = &GroupedTopic{Slug: topicSlug, Name: topicName, Blocks: []*GroupedBlock{}}
			topicIndex[topicSlug] = topicGroup
			grouped = append(grouped, topicGroup)
		}

		blockKey := topicSlug + "/" + blockID
		blockGroup, ok := blockIndex[blockKey]
		if !ok {
			blockGroup = &GroupedBlock{ID: blockID, Name: blockName}
			blockIndex[blockKey] = blockGroup
			topicGroup.Blocks = append(topicGroup.Blocks, blockGroup)
		}

		blockGroup.Materials = append(blockGroup.Materials, material)
	}

	for _, topicGroup := range grouped {
		for _, blockGroup := range topicGroup.Blocks {
			sortMaterialsByPrefix(blockGroup.Materials)
		}
	}

	return grouped
}

// sortMaterialsByPrefix orders materials by their version-like prefix so
// "1.2" comes before "1.12". Materials without a prefix go after all
// prefixed ones, keeping their relative input order. Equal prefixes break
// by name; fully equal entries keep input order.
func sortMaterialsByPrefix(materials []models.Material) {
	sort.SliceStable(materials, func(i, j int) bool {
		prefixA := materials[i].Prefix
		prefixB := materials[j].Prefix

		if prefixA == "" || prefixB == "" {
			return prefixA != "" && prefixB == ""
		}

		if cmp := ComparePrefixes(prefixA, prefixB); cmp != 0 {
			return cmp < 0
		}

		return materials[i].Name < materials[j].Name
	})
}

// ComparePrefixes compares two version-like prefixes segment by segment.
// Numeric segments compare numerically, anything else lexicographically,
// so lexicographic traps like "1.12" < "1.2" cannot happen.
func ComparePrefixes(a, b string) int {
	segmentsA := strings.Split(a, ".")
	segmentsB := strings.Split(b, ".")

	for i := 0; i < len(segmentsA) && i < len(segmentsB); i++ {
		numA, errA := strconv.Atoi(segmentsA[i])
		numB, errB := strconv.Atoi(segmentsB[i])

		if errA == nil && errB == nil {
			if numA != numB {
				if numA < numB {
					return -1
				}
				return 1
			}
			continue
		}

		if segmentsA[i] != segmentsB[i] {
			if segmentsA[i] < segmentsB[i] {
				return -1
			}
			return 1
		}
	}

	// "1" sorts before "1.1"
	switch {
	case len(segmentsA) < len(segmentsB):
		return -1
	case len(segmentsA) > len(segmentsB):
		return 1
	}
	return 0
}
