package api

// User-facing messages. Store and transport failures always map to a generic message.
const (
	msgAllFieldsRequired   = "모든 필드를 입력해주세요."
	msgInvalidBirthDate    = "생년월일은 6자리 숫자로 입력해주세요. (YYMMDD)"
	msgImpossibleBirthDate = "존재하지 않는 날짜입니다. 생년월일을 다시 확인해주세요."
	msgInvalidPhoneSuffix  = "연락처 뒷자리는 4자리 숫자로 입력해주세요."
	msgCredentialsMismatch = "채널명, 생년월일 또는 연락처가 일치하지 않습니다."
	msgTooManyAttempts     = "로그인 시도가 너무 많습니다. 잠시 후 다시 시도해주세요."
	msgLoginFailed         = "로그인 중 오류가 발생했습니다."

	msgAlreadyApplied     = "이미 신청한 캠페인입니다."
	msgCouponNotFound     = "쿠폰 코드를 찾을 수 없습니다. 관리자에게 문의해주세요."
	msgCampaignNotFound   = "캠페인을 찾을 수 없습니다."
	msgApplyFailed        = "신청 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgRequiredMissing    = "필수 정보가 누락되었습니다."
	msgCampaignListFailed = "캠페인 목록을 불러오는 중 오류가 발생했습니다."

	msgBadRequest            = "잘못된 요청입니다."
	msgInvalidCheckinDate    = "입실일은 YYYY-MM-DD 형식으로 입력해주세요."
	msgApplicationNotFound   = "신청 내역을 찾을 수 없습니다."
	msgInvalidTransition     = "이미 취소된 예약은 변경할 수 없습니다."
	msgCheckinFailed         = "입실 정보 등록 중 오류가 발생했습니다."
	msgStatusFailed          = "상태 변경 중 오류가 발생했습니다."
	msgApplicationListFailed = "신청 내역을 불러오는 중 오류가 발생했습니다."
	msgChannelListFailed     = "채널 목록을 불러오는 중 오류가 발생했습니다."
	msgInvalidSessionInfo    = "세션 정보가 올바르지 않습니다."
)
