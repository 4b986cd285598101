package utils

// Client-visible messages.
const (
	MsgAuthRequired      = "인증이 필요합니다."
	MsgInvalidToken      = "유효하지 않은 토큰입니다."
	MsgUserNotFound      = "사용자를 찾을 수 없습니다."
	MsgForbidden         = "권한이 없습니다."
	MsgInternal          = "요청을 처리하는 중 오류가 발생했습니다."
	MsgInvalidRequest    = "잘못된 요청입니다."
	MsgChildNotFound     = "아이 정보를 찾을 수 없습니다."
	MsgChildIDRequired   = "아이 ID가 필요합니다."
	MsgPrescriptionGone  = "해당 처방전을 찾을 수 없습니다."
	MsgPrescriptionIDReq = "처방전 ID가 필요합니다."
	MsgInvalidDate       = "날짜 형식이 올바르지 않습니다."
	MsgInvalidDays       = "조회 기간은 1 이상의 정수여야 합니다."
	MsgReportNotFound    = "리포트를 찾을 수 없습니다."
	MsgImageURLRequired  = "이미지 URL이 필요합니다."
	MsgNewsNotFound      = "뉴스를 찾을 수 없습니다."
	MsgImageNotFound     = "이미지를 찾을 수 없습니다."
	MsgFileRequired      = "업로드할 파일이 필요합니다."
	MsgFileTooLarge      = "파일 크기가 너무 큽니다."
	MsgNotAnImage        = "이미지 파일만 업로드할 수 있습니다."
	MsgInvalidYearMonth  = "연도와 월이 올바르지 않습니다."
	MsgRecordNotFound    = "기록을 찾을 수 없습니다."
	MsgInvalidRecordType = "기록 유형이 올바르지 않습니다."
)

// Success messages.
const (
	MsgChildrenFetched     = "아이 목록을 조회했습니다."
	MsgChildFetched        = "아이 정보를 조회했습니다."
	MsgPrescriptionCreated = "처방전이 등록되었습니다."
	MsgPrescriptionFetched = "처방전 상세 정보를 조회했습니다."
	MsgPrescriptionUpdated = "처방전이 수정되었습니다."
	MsgPrescriptionDeleted = "처방전이 삭제되었습니다."
	MsgReportCreated       = "리포트가 성공적으로 생성되었습니다."
	MsgReportFetched       = "리포트 정보를 성공적으로 가져왔습니다."
	MsgReportsFetched      = "리포트 목록을 성공적으로 가져왔습니다."
	MsgNewsFetched         = "뉴스 목록을 성공적으로 가져왔습니다."
	MsgNewsDetailFetched   = "뉴스 정보를 성공적으로 가져왔습니다."
	MsgImageUploaded       = "이미지가 업로드되었습니다."
	MsgImageDeleted        = "이미지가 삭제되었습니다."
	MsgScheduleFetched     = "예방접종 일정을 조회했습니다."
	MsgCalendarFetched     = "예방접종 달력을 조회했습니다."
	MsgProgressFetched     = "예방접종 진행률을 조회했습니다."
	MsgRecordCreated       = "기록이 저장되었습니다."
	MsgRecordsFetched      = "기록 목록을 조회했습니다."
	MsgRecordDeleted       = "기록이 삭제되었습니다."
)
