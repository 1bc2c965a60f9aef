// File: services/chat/chat.go
package chat

import (
	"strings"
	"time"

	"sprout/models"

	"github.com/google/uuid"
)

// ChatService is the scripted campus assistant.
type ChatService interface {
	NewSession() string
	Reply(sessionID, message string) models.ChatMessage
}

// ScriptedChatService answers by keyword matching against a fixed rule table.
// Rules are checked in order; the first match wins.
type ScriptedChatService struct{}

// NewScriptedChatService returns the assistant.
func NewScriptedChatService() *ScriptedChatService {
	return &ScriptedChatService{}
}

type rule struct {
	keywords []string
	reply    string
	target   string // client screen offered by the reply, empty for plain text
}

var rules = []rule{
	{
		keywords: []string{"안녕", "처음"},
		reply:    "안녕하세요! 싹싹이에요 😊\n졸업 요건, 과목 추천, 시간표, 자격증, 학식 등을 도와드릴 수 있어요!",
	},
	{
		keywords: []string{"졸업", "요건", "남은"},
		reply:    "졸업 요건 분석 화면으로 이동하시겠어요?\n현재 이수 현황과 남은 학점을 확인할 수 있어요!",
		target:   "graduation",
	},
	{
		keywords: []string{"전공"},
		reply:    "전공 학점은 졸업 요건 분석에서 확인하실 수 있어요!\n'졸업 요건' 버튼을 눌러보세요.",
	},
	{
		keywords: []string{"교양"},
		reply:    "교양 학점은 5개 역량(기독교, 인성, 의사소통, 융복합, 글로벌)으로 구성되어 있어요.\n각 역량별로 1과목 이상 필수입니다!",
	},
	{
		keywords: []string{"추천", "과목"},
		reply:    "과목 추천 기능을 이용하시겠어요?\n부족한 학점에 맞춰 과목을 추천해드려요!",
		target:   "recommendation",
	},
	{
		keywords: []string{"시간표"},
		reply:    "시간표 화면으로 이동하시겠어요?\n저장된 시간표를 확인하고 수정할 수 있어요!",
		target:   "timetable",
	},
	{
		keywords: []string{"자격증"},
		reply:    "자격증 게시판으로 이동하시겠어요?\n학부별 추천 자격증을 확인할 수 있어요!",
		target:   "certificate",
	},
	{
		keywords: []string{"학식", "식단", "급식"},
		reply:    "오늘의 학식 메뉴를 확인하시겠어요?\n식단표와 영양 정보를 볼 수 있어요!",
		target:   "meal",
	},
	{
		keywords: []string{"도움", "help", "명령"},
		reply: "다음과 같은 키워드를 사용할 수 있어요! 🌱\n\n" +
			"• 졸업/요건/남은 → 졸업 요건 분석\n" +
			"• 전공 → 전공 학점 정보\n" +
			"• 교양 → 교양 5개 역량 설명\n" +
			"• 추천/과목 → 과목 추천받기\n" +
			"• 시간표 → 저장된 시간표 보기\n" +
			"• 자격증 → 학부별 자격증 정보\n" +
			"• 학식/식단/급식 → 오늘의 식단표\n" +
			"• 안녕/처음 → 인사하기\n\n" +
			"궁금한 걸 물어보세요!",
	},
	{
		keywords: []string{"고마", "감사"},
		reply:    "천만에요! 😊 또 필요하신 게 있으면 언제든지 물어보세요!",
	},
}

const fallbackReply = "죄송해요, 잘 이해하지 못했어요 😅\n'도움말'을 눌러서 사용 가능한 명령어를 확인해보세요!"

// NewSession returns a fresh conversation identifier.
func (s *ScriptedChatService) NewSession() string {
	return uuid.New().String()
}

// Reply answers the user's message. The session ID carries no state today;
// the script is stateless and the ID exists for the client's transcript.
func (s *ScriptedChatService) Reply(sessionID, message string) models.ChatMessage {
	msg := strings.ToLower(message)

	reply := fallbackReply
	target := ""
	for _, r := range rules {
		if matchesAny(msg, r.keywords) {
			reply = r.reply
			target = r.target
			break
		}
	}

	return models.ChatMessage{
		Sender:       models.ChatSenderBot,
		Text:         reply,
		Timestamp:    time.Now().UnixMilli(),
		TargetScreen: target,
	}
}

func matchesAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
