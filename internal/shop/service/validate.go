package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// EmailNotAvailable 无邮箱客户的约定字面值
const EmailNotAvailable = "Not Available"

// MaxNotesLength 自由文本备注上限
const MaxNotesLength = 500

var (
	// 本地手机号 07XXXXXXXX 或国际格式 +947XXXXXXXX
	phonePattern = regexp.MustCompile(`^(07\d{8}|\+947\d{8})$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)
)

// NormalizePhone 去除所有空白后返回号码
func NormalizePhone(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}

// ValidatePhone 校验电话号码格式，合法返回空串
func ValidatePhone(raw string) string {
	phone := NormalizePhone(raw)
	if phone == "" {
		return "phone is required"
	}
	if !phonePattern.MatchString(phone) {
		return "phone must match 07XXXXXXXX or +947XXXXXXXX"
	}
	return ""
}

// ValidateEmail 校验邮箱格式，"Not Available" 作为合法哨兵值放行
func ValidateEmail(raw string) string {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "email is required"
	}
	if email == EmailNotAvailable {
		return ""
	}
	if !emailPattern.MatchString(email) {
		return "email format is invalid"
	}
	return ""
}

// ParseAmount 解析金额：去掉千分位分隔符和空白，必须是非负小数
func ParseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// RepairSubmission 维修工单提交载荷，金额和日期保留原始字符串在校验阶段解析
type RepairSubmission struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	DeviceType  string `json:"device_type"`
	DeviceModel string `json:"device_model"`
	SerialNo    string `json:"serial_no"`

	Issue string `json:"issue"`
	Notes string `json:"notes"`

	EstimatedCost  string `json:"estimated_cost"`
	AdvancePayment string `json:"advance_payment"`
	ExtraExpenses  string `json:"extra_expenses"`

	TechnicianID string `json:"technician_id"`
	Deadline     string `json:"deadline"` // YYYY-MM-DD
}

// ValidateAll 独立校验每个字段，互不短路，返回 字段→错误信息 的映射。
// 映射为空即可提交。
func (sub *RepairSubmission) ValidateAll(now time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(sub.CustomerName) == "" {
		errs["customer_name"] = "customer name is required"
	}
	if msg := ValidatePhone(sub.CustomerPhone); msg != "" {
		errs["customer_phone"] = msg
	}
	if msg := ValidateEmail(sub.CustomerEmail); msg != "" {
		errs["customer_email"] = msg
	}

	if strings.TrimSpace(sub.DeviceType) == "" {
		errs["device_type"] = "device type is required"
	}
	if strings.TrimSpace(sub.DeviceModel) == "" {
		errs["device_model"] = "device model is required"
	}

	if strings.TrimSpace(sub.Issue) == "" {
		errs["issue"] = "issue description is required"
	}
	if utf8.RuneCountInString(sub.Notes) > MaxNotesLength {
		errs["notes"] = "notes must not exceed 500 characters"
	}

	estimated, estOK := ParseAmount(sub.EstimatedCost)
	if !estOK {
		errs["estimated_cost"] = "estimated cost must be a non-negative amount"
	} else if estimated <= 0 {
		errs["estimated_cost"] = "estimated cost must be greater than zero"
	}

	advance := 0.0
	advOK := true
	if strings.TrimSpace(sub.AdvancePayment) != "" {
		advance, advOK = ParseAmount(sub.AdvancePayment)
		if !advOK {
			errs["advance_payment"] = "advance payment must be a non-negative amount"
		}
	}
	if strings.TrimSpace(sub.ExtraExpenses) != "" {
		if _, ok := ParseAmount(sub.ExtraExpenses); !ok {
			errs["extra_expenses"] = "extra expenses must be a non-negative amount"
		}
	}

	// 跨字段规则：两边都解析成功才比较
	if estOK && advOK && advance > estimated {
		errs["advance_payment"] = "advance payment must not exceed estimated cost"
	}

	if strings.TrimSpace(sub.TechnicianID) == "" {
		errs["technician_id"] = "technician is required"
	}

	if strings.TrimSpace(sub.Deadline) == "" {
		errs["deadline"] = "deadline is required"
	} else if deadline, err := time.Parse("2006-01-02", sub.Deadline); err != nil {
		errs["deadline"] = "deadline must be a valid date (YYYY-MM-DD)"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if deadline.Before(today) {
			errs["deadline"] = "deadline must not be earlier than today"
		}
	}

	return errs
}

// Amounts 返回已校验提交的解析后金额
func (sub *RepairSubmission) Amounts() (estimated, advance, extra float64) {
	estimated, _ = ParseAmount(sub.EstimatedCost)
	if strings.TrimSpace(sub.AdvancePayment) != "" {
		advance, _ = ParseAmount(sub.AdvancePayment)
	}
	if strings.TrimSpace(sub.ExtraExpenses) != "" {
		extra, _ = ParseAmount(sub.ExtraExpenses)
	}
	return estimated, advance, extra
}
