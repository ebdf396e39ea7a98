package parsing

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/writing-highlighter/internal/types"
)

const (
	criteriaRowSelector   = ".criteria-list-item, .criteria-row, .success-criteria-item"
	genericRowSelector    = ".list-group-item"
	badgeSelector         = ".badge, .criteria-score, .score-badge"
	justificationSelector = ".criteria-justification, .justification"
	feedbackSelector      = ".feedback-section, .analysis-feedback"
	strengthsSelector     = ".strengths-section, .strengths"
	developmentSelector   = ".development-section, .areas-for-development"
	criteriaDataSelector  = "#criteria-data, .criteria-data"
)

var scoreTextPattern = regexp.MustCompile(`(?i)score:\s*(\d+)\s*/\s*\d+`)

// ParseCriteriaMarkup reads criteria records out of previously rendered feedback pages.
// It understands criteria rows with a score badge, strengths and development bullet lists
// of the form "Criterion: comment", and an embedded #criteria-data JSON block.
func ParseCriteriaMarkup(htmlContent string) ([]types.CriterionRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &MarkupError{Message: "failed to parse HTML", Cause: err}
	}

	records := make([]types.CriterionRecord, 0)

	rows := doc.Find(criteriaRowSelector)
	if rows.Length() == 0 {
		rows = doc.Find(genericRowSelector)
	}
	rows.Each(func(_ int, row *goquery.Selection) {
		if rec, ok := recordFromRow(row); ok {
			records = append(records, rec)
		}
	})

	feedback := doc.Find(feedbackSelector).First()
	if feedback.Length() > 0 {
		records = append(records, recordsFromBullets(feedback.Find(strengthsSelector).First(), types.ScoreAchieved)...)
		records = append(records, recordsFromBullets(feedback.Find(developmentSelector).First(), types.ScorePartial)...)
	}

	embedded, err := recordsFromDataBlock(doc.Find(criteriaDataSelector).First())
	if err != nil {
		return nil, err
	}
	records = append(records, embedded...)

	return records, nil
}

// recordFromRow reads one criteria row. Rows without a recognisable score are skipped.
func recordFromRow(row *goquery.Selection) (types.CriterionRecord, bool) {
	score, hasScore := row.Attr("data-score")
	name, hasName := row.Attr("data-criteria")
	name = strings.TrimSpace(name)

	justification, _ := row.Attr("data-justification")
	justificationEl := row.Find(justificationSelector).First()
	if justification == "" && justificationEl.Length() > 0 {
		justification = collapse(justificationEl.Text())
	}

	badge := row.Find(badgeSelector).First()
	if !hasScore && badge.Length() > 0 {
		score = badgeScore(badge.Text())
		hasScore = score != ""
	}
	if !hasScore {
		if m := scoreTextPattern.FindStringSubmatch(row.Text()); m != nil {
			score, hasScore = m[1], true
		}
	}
	if !hasScore {
		return types.CriterionRecord{}, false
	}

	if !hasName || name == "" {
		name = rowName(row)
	}

	return types.CriterionRecord{
		Criteria:      name,
		Score:         score,
		Justification: justification,
	}, true
}

// rowName is the row text with badge and justification removed.
func rowName(row *goquery.Selection) string {
	name := row.Clone()
	name.Find(badgeSelector).Remove()
	name.Find(justificationSelector).Remove()
	return collapse(scoreTextPattern.ReplaceAllString(name.Text(), ""))
}

// badgeScore picks the score digit out of badge text such as "2/2" or "Score 1".
func badgeScore(text string) string {
	text = strings.TrimSpace(text)
	if m := scoreTextPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	for _, digit := range []string{"0", "1", "2"} {
		if strings.HasPrefix(text, digit) {
			return digit
		}
	}
	for _, digit := range []string{"0", "1", "2"} {
		if strings.Contains(text, digit) {
			return digit
		}
	}
	return ""
}

func recordsFromBullets(section *goquery.Selection, score int) []types.CriterionRecord {
	if section.Length() == 0 {
		return nil
	}

	var records []types.CriterionRecord
	section.Find("li, p").Each(func(_ int, item *goquery.Selection) {
		text := collapse(item.Text())
		name, _, found := strings.Cut(text, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return
		}
		records = append(records, types.CriterionRecord{
			Criteria:      name,
			Score:         score,
			Justification: text,
		})
	})
	return records
}

func recordsFromDataBlock(block *goquery.Selection) ([]types.CriterionRecord, error) {
	if block.Length() == 0 {
		return nil, nil
	}

	payload, ok := block.Attr("data-criteria")
	if !ok {
		payload = block.Text()
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, nil
	}
	if !json.Valid([]byte(payload)) {
		return nil, &MarkupError{Message: "criteria data block is not valid JSON"}
	}
	return ParseCriteriaJSON([]byte(payload))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
