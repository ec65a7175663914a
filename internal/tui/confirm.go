package tui

type confirmModel struct {
	prompt string
	name   string
}

func (m confirmModel) View() string {
	content := m.prompt + "\n\n" + titleStyle.Render(m.name) + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
