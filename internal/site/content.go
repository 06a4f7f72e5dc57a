package site

import "strings"

// Profile은 사이트 주인 정보입니다. 설정 파일의 'profile' 섹션으로 덮어쓸 수 있습니다.
type Profile struct {
	Name      string
	Headline  string
	Email     string
	Phone     string
	Location  string
	GitHub    string
	LinkedIn  string
	Instagram string
}

// DefaultProfile은 설정이 없을 때의 기본값입니다.
func DefaultProfile() Profile {
	return Profile{
		Name:      "Portfolio",
		Headline:  "사용자 경험을 생각하는 개발자입니다.",
		Email:     "contact@example.com",
		Phone:     "+82 10-1234-5678",
		Location:  "Seoul, South Korea",
		GitHub:    "https://github.com",
		LinkedIn:  "https://linkedin.com",
		Instagram: "https://instagram.com",
	}
}

// NavItem은 상단 내비게이션 링크입니다.
type NavItem struct {
	Href  string
	Label string
}

// Section은 랜딩 페이지의 정적 섹션입니다.
type Section struct {
	ID          string
	Title       string
	Body        string
	ButtonLabel string
	ButtonHref  string
}

// SkillGroup은 스킬 트리의 가지 하나입니다.
type SkillGroup struct {
	Name   string
	Skills []Skill
}

// Skill은 기술 하나와 숙련도(0~100)입니다.
type Skill struct {
	Name  string
	Level int
}

// ContactInfo는 연락처 한 줄입니다. Href가 비면 링크 없이 표시합니다.
type ContactInfo struct {
	Icon  string
	Label string
	Value string
	Href  string
}

// SocialLink는 소셜 버튼입니다.
type SocialLink struct {
	Icon  string
	Label string
	Href  string
}

// Content는 두 페이지(랜딩, 프로젝트)가 공유하는 정적 콘텐츠 묶음입니다.
type Content struct {
	Profile  Profile
	Nav      []NavItem
	Hero     Section
	About    Section
	Skills   Section
	Groups   []SkillGroup
	Projects Section
	Contact  Section
	Contacts []ContactInfo
	Socials  []SocialLink
}

// NewContent는 프로필 정보로 정적 콘텐츠를 조립합니다. 빈 필드는 기본값을 씁니다.
func NewContent(p Profile) *Content {
	p = withDefaults(p)

	return &Content{
		Profile: p,
		Nav: []NavItem{
			{Href: "/", Label: "Home"},
			{Href: "/#about", Label: "About Me"},
			{Href: "/projects", Label: "Projects"},
		},
		Hero: Section{
			ID:    "hero",
			Title: p.Name,
			Body:  p.Headline,
		},
		About: Section{
			ID:          "about",
			Title:       "About Me",
			Body:        "안녕하세요. 문제를 끝까지 파고들고, 만든 것을 직접 운영하며 배우는 것을 좋아합니다.",
			ButtonLabel: "더 알아보기",
			ButtonHref:  "/#contact",
		},
		Skills: Section{
			ID:    "skills",
			Title: "Skill Tree",
			Body:  "주로 다루는 기술 스택입니다.",
		},
		Groups: []SkillGroup{
			{Name: "Frontend", Skills: []Skill{{Name: "React", Level: 80}, {Name: "MUI", Level: 70}, {Name: "Vite", Level: 60}}},
			{Name: "Backend", Skills: []Skill{{Name: "Go", Level: 75}, {Name: "Fiber", Level: 65}, {Name: "MySQL", Level: 60}}},
			{Name: "Infra", Skills: []Skill{{Name: "Supabase", Level: 60}, {Name: "GitHub Actions", Level: 55}}},
		},
		Projects: Section{
			ID:          "projects",
			Title:       "Projects",
			Body:        "대표 작업물입니다.",
			ButtonLabel: "더 보기",
			ButtonHref:  "/projects",
		},
		Contact: Section{
			ID:    "contact",
			Title: "Contact",
			Body:  "궁금한 점이 있으시면 연락주세요",
		},
		Contacts: []ContactInfo{
			{Icon: "email", Label: "Email", Value: p.Email, Href: "mailto:" + p.Email},
			{Icon: "phone", Label: "Phone", Value: p.Phone, Href: telHref(p.Phone)},
			{Icon: "location", Label: "Location", Value: p.Location},
		},
		Socials: []SocialLink{
			{Icon: "github", Label: "GitHub", Href: p.GitHub},
			{Icon: "linkedin", Label: "LinkedIn", Href: p.LinkedIn},
			{Icon: "instagram", Label: "Instagram", Href: p.Instagram},
		},
	}
}

func withDefaults(p Profile) Profile {
	d := DefaultProfile()
	fill := func(dst *string, def string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = def
		}
	}
	fill(&p.Name, d.Name)
	fill(&p.Headline, d.Headline)
	fill(&p.Email, d.Email)
	fill(&p.Phone, d.Phone)
	fill(&p.Location, d.Location)
	fill(&p.GitHub, d.GitHub)
	fill(&p.LinkedIn, d.LinkedIn)
	fill(&p.Instagram, d.Instagram)
	return p
}

// telHref는 "+82 10-1234-5678" → "tel:+821012345678" 형태로 바꿉니다.
func telHref(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
