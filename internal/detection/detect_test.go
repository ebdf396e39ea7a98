package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findingTexts(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Text)
	}
	return out
}

func TestDetect_UnknownCategory(t *testing.T) {
	assert.Empty(t, Detect("Some text here.", CategoryNone, "Be creative"))
}

func TestDetect_EmptyText(t *testing.T) {
	assert.Empty(t, Detect("   ", CategoryAdverbs, "Use adverbs"))
}

func TestDetect_HeadlineWithSeparator(t *testing.T) {
	findings := Detect("Breaking News: Children Find Pearl\nYesterday two children found a pearl.", CategoryHeadline, "Use a headline")
	require.Len(t, findings, 1)
	assert.Equal(t, "Breaking News: Children Find Pearl", findings[0].Text)
	assert.InDelta(t, 0.95, findings[0].Confidence, 1e-9)
}

func TestDetect_HeadlineShortFirstLine(t *testing.T) {
	findings := Detect("Children Find Pearl\n\nYesterday two children found a pearl on the beach.", CategoryHeadline, "Use a headline")
	require.Len(t, findings, 1)
	assert.Equal(t, "Children Find Pearl", findings[0].Text)
	assert.InDelta(t, 0.9, findings[0].Confidence, 1e-9)
}

func TestDetect_DirectSpeech(t *testing.T) {
	findings := Detect(`He said, "I am happy."`, CategoryDirectSpeech, "Use direct speech")
	require.Len(t, findings, 1)
	assert.Equal(t, `"I am happy."`, findings[0].Text)
	assert.InDelta(t, 0.95, findings[0].Confidence, 1e-9)
}

func TestDetect_ContractionsAreNotSpeech(t *testing.T) {
	assert.Empty(t, Detect("I don't know. It's fine.", CategoryDirectSpeech, "Use direct speech"))
}

func TestDetect_PastTense(t *testing.T) {
	findings := Detect("She jumped over the big log and then she ran home.", CategoryPastTense, "Use past tense")
	assert.Equal(t, []string{"jumped", "ran"}, findingTexts(findings))
	assert.InDelta(t, 0.85, findings[0].Confidence, 1e-9)
	assert.InDelta(t, 0.9, findings[1].Confidence, 1e-9)
}

func TestDetect_Spelling(t *testing.T) {
	findings := Detect("I believe it is necessary.", CategorySpelling, "Spelling")
	assert.Equal(t, []string{"believe", "necessary"}, findingTexts(findings))
	for _, f := range findings {
		assert.InDelta(t, 0.9, f.Confidence, 1e-9)
	}
}

func TestDetect_Capitalization(t *testing.T) {
	findings := Detect("I went to London. it rained.", CategoryCapitalization, "Use capital letters")
	require.NotEmpty(t, findings)
	assert.Equal(t, "I", findings[0].Text)
	assert.InDelta(t, 0.9, findings[0].Confidence, 1e-9)
	assert.Contains(t, findingTexts(findings), "London")
	assert.NotContains(t, findingTexts(findings), "it")
}

func TestDetect_PunctuationFrontedAdverbial(t *testing.T) {
	findings := Detect("Suddenly, the door opened. The cat, however, stayed.", CategoryPunctuation, "Use commas")
	require.Len(t, findings, 2)
	assert.Equal(t, "Suddenly,", findings[0].Text)
	assert.InDelta(t, 0.9, findings[0].Confidence, 1e-9)
	assert.Equal(t, "The cat, however, stayed", findings[1].Text)
	assert.InDelta(t, 0.8, findings[1].Confidence, 1e-9)
}

func TestDetect_PossessivePronouns(t *testing.T) {
	findings := Detect("My dog chased her ball.", CategoryPronouns, "Use possessive pronouns")
	assert.Equal(t, []string{"My", "her"}, findingTexts(findings))
}

func TestDetect_ModalVerbs(t *testing.T) {
	findings := Detect("You should go. We must stay.", CategoryModalVerbs, "Use modal verbs")
	assert.Equal(t, []string{"should", "must"}, findingTexts(findings))
}

func TestDetect_RelativeClause(t *testing.T) {
	findings := Detect("The boy, who was tall, ran.", CategoryRelativeClauses, "Use a relative clause")
	require.Len(t, findings, 1)
	assert.Equal(t, "The boy, who was tall, ran", findings[0].Text)
	assert.InDelta(t, 0.9, findings[0].Confidence, 1e-9)
}

func TestDetect_CompoundAndCoordinating(t *testing.T) {
	text := "I was tired, but I kept going."

	compound := Detect(text, CategoryCompound, "Write compound sentences")
	require.Len(t, compound, 1)
	assert.Equal(t, "I was tired, but I kept going", compound[0].Text)

	coordinating := Detect(text, CategoryCoordinating, "Use coordinating conjunctions")
	require.Len(t, coordinating, 1)
	assert.InDelta(t, 0.9, coordinating[0].Confidence, 1e-9)
}

func TestDetect_Vocabulary(t *testing.T) {
	findings := Detect("The magnificent creature glided gracefully. It was big.", CategoryVocabulary, "Use ambitious vocabulary")
	require.Len(t, findings, 1)
	assert.Equal(t, "The magnificent creature glided gracefully", findings[0].Text)
	assert.InDelta(t, 0.85, findings[0].Confidence, 1e-9)
}

func TestDetect_Adverbs(t *testing.T) {
	findings := Detect("She ran quickly.", CategoryAdverbs, "Use adverbs")
	require.Len(t, findings, 1)
	assert.Equal(t, "quickly", findings[0].Text)
	assert.InDelta(t, 0.8, findings[0].Confidence, 1e-9)
}

func TestDetect_FormalTone(t *testing.T) {
	findings := Detect("The results were analysed. Furthermore, the data is significant.", CategoryFormalTone, "Use a formal tone")
	require.Len(t, findings, 3)
	assert.Equal(t, "The results were analysed", findings[0].Text)
	assert.InDelta(t, 0.8, findings[0].Confidence, 1e-9)
	assert.InDelta(t, 0.85, findings[1].Confidence, 1e-9)
	assert.Contains(t, findings[2].Context, "furthermore")
}

func TestDetect_ParagraphTopicSentences(t *testing.T) {
	text := "Dogs make loyal and loving pets. They wag.\nCats are independent and curious animals. They nap."
	findings := Detect(text, CategoryParagraphs, "Organise into paragraphs")
	assert.Equal(t, []string{"Dogs make loyal and loving pets", "Cats are independent and curious animals"}, findingTexts(findings))
}
