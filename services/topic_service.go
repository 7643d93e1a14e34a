package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/xndadelin/NXT/models"
)

var ErrNoSections = errors.New("topic markdown contains no headings")

// QuizDraft is a staged quiz question referenced from the markdown body via
// [quiz:N] markers (1-based).
type QuizDraft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SectionDraft is a parsed section before persistence. Parent points at the
// index of the nearest preceding shallower heading, -1 for top level.
type SectionDraft struct {
	Title   string
	Anchor  string
	Content string
	Level   int
	Parent  int
	Order   int
	Quizzes []int
}

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	quizRe    = regexp.MustCompile(`^\[quiz:(\d+)\]\s*$`)
)

// ParseTopicMarkdown turns a markdown document into a section tree: each
// heading opens a section whose level is the heading depth and whose parent
// is the nearest shallower heading above it. Body lines accumulate into the
// open section's content; [quiz:N] lines attach the Nth staged question
// instead. Text before the first heading is discarded.
func ParseTopicMarkdown(markdown string, quizzes []QuizDraft) ([]SectionDraft, error) {
	var sections []SectionDraft
	// Most recent section seen at each heading depth, for parent lookup.
	lastAtLevel := make(map[int]int)
	current := -1
	var content []string

	flush := func() {
		if current >= 0 {
			sections[current].Content = strings.TrimSpace(strings.Join(content, "\n"))
		}
		content = nil
	}

	for _, line := range strings.Split(markdown, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			level := len(m[1])
			title := strings.TrimSpace(m[2])

			parent := -1
			for l := level - 1; l >= 1; l-- {
				if idx, ok := lastAtLevel[l]; ok {
					parent = idx
					break
				}
			}

			sections = append(sections, SectionDraft{
				Title:  title,
				Anchor: slug.Make(title),
				Level:  level,
				Parent: parent,
				Order:  len(sections),
			})
			current = len(sections) - 1
			lastAtLevel[level] = current
			// A new heading invalidates deeper ancestors.
			for l := level + 1; l <= 6; l++ {
				delete(lastAtLevel, l)
			}
			continue
		}

		if m := quizRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil && current >= 0 {
			n, err := strconv.Atoi(m[1])
			if err == nil && n >= 1 && n <= len(quizzes) {
				sections[current].Quizzes = append(sections[current].Quizzes, n-1)
				continue
			}
		}

		if current >= 0 {
			content = append(content, line)
		}
	}
	flush()

	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	return sections, nil
}

// CreateTopic persists a parsed topic atomically: the topic row, the section
// tree (parents resolved to real ids in document order) and the referenced
// quiz questions.
func CreateTopic(db *gorm.DB, authorID uint32, title, shortDescription, markdown string, quizzes []QuizDraft) (*models.Topic, error) {
	drafts, err := ParseTopicMarkdown(markdown, quizzes)
	if err != nil {
		return nil, err
	}

	topic := &models.Topic{
		Title:            title,
		ShortDescription: shortDescription,
		AuthorID:         authorID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(topic).Error; err != nil {
			return err
		}

		ids := make([]uint32, len(drafts))
		for i, d := range drafts {
			section := models.TopicSection{
				TopicID:    topic.ID,
				Title:      d.Title,
				Anchor:     d.Anchor,
				Content:    d.Content,
				Level:      d.Level,
				OrderIndex: d.Order,
			}
			if d.Parent >= 0 {
				section.ParentID = &ids[d.Parent]
			}
			if err := tx.Create(&section).Error; err != nil {
				return err
			}
			ids[i] = section.ID

			for _, q := range d.Quizzes {
				question := models.QuizQuestion{
					SectionID: section.ID,
					Question:  quizzes[q].Question,
					Answer:    quizzes[q].Answer,
				}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return topic, nil
}

// CheckQuizAnswer is an exact string match against the stored answer.
func CheckQuizAnswer(db *gorm.DB, questionID uint32, answer string) (bool, error) {
	var question models.QuizQuestion
	if err := db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, gorm.ErrRecordNotFound
		}
		return false, err
	}
	return question.Answer == answer, nil
}
