// Package prompt builds the instruction strings sent to the text-generation
// model. Builders are pure functions of their inputs.
package prompt

import (
	"fmt"
	"strings"
)

func IndustryInsights(industry string) string {
	return fmt.Sprintf(`
Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.
`, industry)
}

func Quiz(industry string, skills []string) string {
	withSkills := ""
	if len(skills) > 0 {
		withSkills = fmt.Sprintf(" with expertise in %s", strings.Join(skills, ", "))
	}
	return fmt.Sprintf(`
Generate 10 technical interview questions for a %s professional%s.

Each question should be multiple choice with 4 options.

Return the response in this JSON format only, no additional text:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string"
    }
  ]
}
`, industry, withSkills)
}

type WrongAnswer struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
}

func ImprovementTip(industry string, wrong []WrongAnswer) string {
	var b strings.Builder
	for i, w := range wrong {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Question: %q\nCorrect Answer: %q\nUser Answer: %q", w.Question, w.CorrectAnswer, w.UserAnswer)
	}
	return fmt.Sprintf(`
The user got the following %s technical interview questions wrong:

%s

Based on these mistakes, provide a concise, specific improvement tip.
Focus on the knowledge gaps revealed by these wrong answers.
Keep the response under 2 sentences and make it encouraging.
Don't explicitly mention the mistakes, instead focus on what to learn/practice.
`, industry, b.String())
}

type CoverLetterInput struct {
	Name           string
	Industry       string
	Experience     int
	Bio            string
	Skills         []string
	CompanyName    string
	JobTitle       string
	JobDescription string
}

func CoverLetter(in CoverLetterInput) string {
	return fmt.Sprintf(`
Write a professional cover letter for a %s position at %s.

About the candidate:
- Name: %s
- Industry: %s
- Years of experience: %d
- Skills: %s
- Professional background: %s

Job description:
%s

Requirements:
1. Use a professional, enthusiastic tone.
2. Highlight relevant skills and experience.
3. Show understanding of the company's needs.
4. Keep it concise (a maximum of 400 words).
5. Use proper business letter formatting in markdown.
6. Include specific examples of achievements.
7. Relate the candidate's background to the job requirements.

Format the letter in markdown.
`, in.JobTitle, in.CompanyName, in.Name, in.Industry, in.Experience,
		strings.Join(in.Skills, ", "), in.Bio, in.JobDescription)
}
