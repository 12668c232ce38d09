package translate

import "fmt"

// GetTranslatePrompt returns the system prompt for translating one
// content field between locales.
func GetTranslatePrompt(fieldName, sourceLocale, targetLocale string) string {
	return fmt.Sprintf(`You are an expert translator. Translate the %s into the target language.

<context>
<content_type>%s</content_type>
<source_language>%s</source_language>
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. Preserve the tone and register of the original
3. NEVER translate: URLs, email addresses, proper nouns that are names of products or venues
4. Output ONLY the translation, nothing else
5. NEVER wrap output in markdown code blocks
6. NO leading or trailing whitespace
</instructions>`, fieldName, fieldName, sourceLocale, targetLocale)
}
