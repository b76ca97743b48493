package studyindex

// Default page texts for the USTC CS debate team study pages.
const (
	DefaultTitle                  = "学习经验分享"
	DefaultIntro                  = "这里是中国科学技术大学计算机科学与技术学院辩论队的学习经验分享页面！"
	DefaultCardsHeading           = "学习资源索引"
	DefaultLabelSuffix            = "学习资料"
	DefaultDetailSuffix           = "详情"
	DefaultEmptyIndexPlaceholder  = "暂无学习资料，敬请期待..."
	DefaultMaterialsHeading       = "资料列表"
	DefaultEmptyFolderPlaceholder = "尚在完善中..."
	DefaultTemplate               = "main.html"
)

// Layout holds the literal texts spliced into generated pages.
type Layout struct {
	Title                  string // Top-level page title
	Intro                  string // Paragraph under the top-level front matter; empty omits it
	CardsHeading           string // Heading above the card grid
	LabelSuffix            string // Appended to a folder name: card label and folder page title
	DetailSuffix           string // Appended to the label in top-level detail headings
	EmptyIndexPlaceholder  string // Top-level detail line for a folder without documents
	MaterialsHeading       string // Folder page list heading
	EmptyFolderPlaceholder string // Folder page line when there are no documents
	Comments               bool   // front matter "comments"
	Template               string // front matter "template"
}

// DefaultLayout returns the texts used by the study site.
func DefaultLayout() Layout {
	return Layout{
		Title:                  DefaultTitle,
		Intro:                  DefaultIntro,
		CardsHeading:           DefaultCardsHeading,
		LabelSuffix:            DefaultLabelSuffix,
		DetailSuffix:           DefaultDetailSuffix,
		EmptyIndexPlaceholder:  DefaultEmptyIndexPlaceholder,
		MaterialsHeading:       DefaultMaterialsHeading,
		EmptyFolderPlaceholder: DefaultEmptyFolderPlaceholder,
		Comments:               true,
		Template:               DefaultTemplate,
	}
}

// FrontMatter is the metadata block at the top of every generated page.
// Field order is the emitted order.
type FrontMatter struct {
	Title    string `yaml:"title"`
	Comments bool   `yaml:"comments"`
	Template string `yaml:"template"`
}

// frontMatter builds the front matter for a page titled title.
func (l Layout) frontMatter(title string) FrontMatter {
	return FrontMatter{Title: title, Comments: l.Comments, Template: l.Template}
}

// label returns the display label for a category folder.
func (l Layout) label(folder string) string {
	return folder + l.LabelSuffix
}
