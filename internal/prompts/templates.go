// Package prompts contains the fixed instruction templates sent to the
// generation endpoint. The templates are plain string substitution; the
// transcript and the user's search term are interpolated as-is.
package prompts

import "fmt"

// System is the system-role instruction sent alongside every generation
// call. It pins the persona and the output language.
const System = `당신은 사내 메신저의 대화 내용을 분석하는 업무 보조 AI입니다.
항상 한국어로, 정확하고 간결하게 답변하세요.
대화에 없는 내용을 추측하거나 지어내지 마세요.`

// Summarize builds the prompt for a concise summary of the transcript.
func Summarize(conversations string) string {
	return fmt.Sprintf(`다음은 사내 메신저의 대화 내용입니다.

%s

위 대화 내용을 간결하게 요약해주세요.
주요 주제, 결정된 사항, 후속 조치가 필요한 항목을 중심으로 정리해주세요.`, conversations)
}

// Search builds the prompt that answers the given query from the transcript.
func Search(query, conversations string) string {
	return fmt.Sprintf(`다음은 사내 메신저의 대화 내용입니다.

%s

위 대화 내용에서 "%s"에 대한 내용을 찾아서 알려주세요.
관련 내용이 없다면 찾을 수 없다고 답변해주세요.`, conversations, query)
}

// Report builds the prompt for a structured, comprehensive report.
func Report(conversations string) string {
	return fmt.Sprintf(`다음은 사내 메신저의 대화 내용입니다.

%s

위 대화 내용을 바탕으로 종합 리포트를 작성해주세요.
다음 항목을 포함해주세요.
1. 전체 개요
2. 주요 논의 사항
3. 결정된 사항
4. 후속 조치가 필요한 항목`, conversations)
}
