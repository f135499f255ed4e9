package llm

const extractionSystemPrompt = "You are a data extraction engine. You output strict JSON only."

func BuildMenuExtractPrompt(menuText string) string {
	return `
Convert the menu text below into STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.

If you cannot extract anything, return this exact JSON:
{
  "items": []
}

Required JSON schema:
{
  "items": [
    {
      "name": "string",
      "description": "string (empty if none)",
      "category": "string (menu section, empty if none)"
    }
  ]
}

MENU TEXT:
` + menuText
}
