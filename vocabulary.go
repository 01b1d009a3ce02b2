package coursechef

import "strings"

// Vocabulary holds the organization-specific strings that drive pruning
// and classification. Matching is by substring unless noted otherwise.
type Vocabulary struct {
	// LearningObjectives phrases mark a vertical whose text becomes the
	// parent's description.
	LearningObjectives []string `yaml:"learning_objectives"`

	// KnowledgeCheck phrases mark a vertical that becomes an exercise.
	KnowledgeCheck []string `yaml:"knowledge_check"`

	// TitlesToDrop are boilerplate titles (registration, surveys, ...).
	TitlesToDrop []string `yaml:"titles_to_drop"`

	// DropIcons are image sources removed before text extraction. Exact match.
	DropIcons []string `yaml:"drop_icons"`

	// DropExplanations are boilerplate solution texts never used as hints.
	DropExplanations []string `yaml:"drop_explanations"`

	// SkipKinds are child kinds removed by the pruner. Exact match.
	SkipKinds []string `yaml:"skip_kinds"`

	// ResourcesTitle titles the synthetic per-chapter bundle node.
	ResourcesTitle string `yaml:"resources_title"`
}

// DefaultVocabulary returns the vocabulary for Edraak course exports.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		LearningObjectives: []string{
			"الأهداف التعليمية",
			"الاهداف التعليمية",
		},
		KnowledgeCheck: []string{
			"التحقق من المعرفة",
		},
		TitlesToDrop: []string{
			"التسجيل في المساق",                   // registration in the course
			"كيفية استخدام المنصة",                // how to use the platform
			"توضيح الايقونات",                     // icon legend
			"استخدام الالة الحاسبة",               // using the calculator
			"محاكي الاختبار",                      // test simulator (.exe download)
			"كيفية إصدار الشهادة",                 // how to get the certificate
			"الإنهاء من المساق",                   // finishing the course
			"إستبيان التسجيل في المساق",           // registration survey
			"تابعونا على مواقع التواصل الاجتماعي", // follow us on social media
			"إستبيان الانتهاء من المساق",          // completion survey
			"إستبيان إنهاء المساق",                // completion survey
			"استبيان نهاية المساق",                // end of course survey
			"مفاجأة المساق",                       // course surprise, discussion only
		},
		DropIcons: []string{
			"/static/lightbulb.jpg",
			"/static/bald22.jpg",
			"/static/mic.png",
			"/static/exam.jpg",
			"/static/Week1-Progress.png",
			"/static/Week2-Progress.png",
			"/static/Week3-Progress.png",
			"/static/FirstAid-Instructor-Video.png",
			"/static/FirstAid-Instructor-question2.png",
			"/static/FirstAid-Instructor-discussion.png",
			"/static/rsz_swift_logo_rgb.jpg",
		},
		DropExplanations: []string{
			"release of the iPod allowed consumers",
		},
		SkipKinds:      []string{KindWiki},
		ResourcesTitle: "Downloadable Resources",
	}
}

// ShouldDropTitle reports whether title contains a boilerplate title.
func (v *Vocabulary) ShouldDropTitle(title string) bool {
	return containsAny(title, v.TitlesToDrop)
}

// ShouldSkipKind reports whether kind is removed by the pruner.
func (v *Vocabulary) ShouldSkipKind(kind string) bool {
	for _, k := range v.SkipKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// IsDropIcon reports whether src is a decorative icon.
func (v *Vocabulary) IsDropIcon(src string) bool {
	for _, icon := range v.DropIcons {
		if icon == src {
			return true
		}
	}
	return false
}

// IsDropExplanation reports whether a solution text is boilerplate.
func (v *Vocabulary) IsDropExplanation(text string) bool {
	return containsAny(text, v.DropExplanations)
}

// containsAny reports whether s contains any non-empty phrase.
func containsAny(s string, phrases []string) bool {
	if s == "" {
		return false
	}
	for _, p := range phrases {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}
