// Package schema holds the column names of the hosted base. They are owned by the
// operations team and change only together with the base itself.
package schema

import (
	"fmt"

	"sponsor-portal/internal/domain/tier"
)

var Influencer = struct {
	ChannelName string
	BirthDate   string
	Phone       string
	Tier        string
}{
	ChannelName: "크리에이터 채널명",
	BirthDate:   "생년월일",
	Phone:       "연락처",
	Tier:        "등급화 (from 크리에이터 채널명 (크리에이터 명단))",
}

var Campaign = struct {
	AccommodationName string
	Location          string
	Deadline          string
	DetailURL         string
	ApplicationURL    string
	Features          string
	CouponCode        string
	Applicants        string
}{
	AccommodationName: "숙소 이름을 적어주세요.",
	Location:          "숙소 위치",
	Deadline:          "⏰ 콘텐츠 제작 기한",
	DetailURL:         "숙소 링크 (캠핏 내 상세페이지만 삽입 가능)",
	ApplicationURL:    "신청 링크",
	Features:          "숙소 특장점",
	CouponCode:        "쿠폰코드",
	Applicants:        "유료 오퍼 신청 인플루언서",
}

var Application = struct {
	ChannelName       string
	Influencer        string
	Email             string
	Campaign          string
	CheckinDate       string
	CheckinSite       string
	Status            string
	DepositConfirmed  string
	AccommodationName string
	CouponCode        string
}{
	ChannelName:      "크리에이터 채널명",
	Influencer:       "크리에이터 채널명(프리미엄 협찬 신청)",
	Email:            "이메일",
	Campaign:         "숙소 이름 (유료 오퍼)",
	CheckinDate:      "입실일",
	CheckinSite:      "입실 사이트",
	Status:           "예약 취소/변경",
	DepositConfirmed: "입금내역 확인",
	// lookup columns; the typo is in the base
	AccommodationName: "숙소 이름을 적어주세요. (from 숙소 이름 (유료 오퍼ㅏ))",
	CouponCode:        "쿠폰코드 (from 숙소 이름 (유료 오퍼))",
}

// TierFields names the three columns holding one tier's terms on a campaign
type TierFields struct {
	Price     string
	Total     string
	Available string
}

var tierFields = map[tier.Level]TierFields{
	tier.Icon: {
		Price:     "⭐️ 협찬 제안 금액",
		Total:     "⭐️ 모집 희망 인원",
		Available: "⭐️ 신청 가능 인원",
	},
	tier.Partner: {
		Price:     "✔️ 협찬 제안 금액",
		Total:     "✔️ 모집 인원",
		Available: "✔️ 신청 가능 인원",
	},
	tier.Rising: {
		Price:     "🔥 협찬 제안 금액",
		Total:     "🔥 모집 인원",
		Available: "🔥 신청 가능 인원",
	},
}

// FieldsFor panics on a level outside tier.All; callers hold a validated tier.Level
func FieldsFor(level tier.Level) TierFields {
	f, ok := tierFields[level]
	if !ok {
		panic(fmt.Sprintf("schema: no campaign fields for tier %q", string(level)))
	}
	return f
}
