package keypad

// Button is one cell of the on-screen keypad.
type Button struct {
	Label  string
	Action string
}

// Layout returns the keypad grid, top row first. Rows may differ in length.
func Layout(sep rune) [][]Button {
	return [][]Button{
		{{"AC", ActionClear}, {"÷", ActionDivide}},
		{{"7", "digit-7"}, {"8", "digit-8"}, {"9", "digit-9"}, {"×", ActionMultiply}},
		{{"4", "digit-4"}, {"5", "digit-5"}, {"6", "digit-6"}, {"-", ActionSubtract}},
		{{"1", "digit-1"}, {"2", "digit-2"}, {"3", "digit-3"}, {"+", ActionAdd}},
		{{"0", "digit-0"}, {string(sep), ActionSeparator}, {"=", ActionEquals}},
	}
}

// LabelFor returns the button label bound to action, or "" for non-button
// actions such as navigation.
func LabelFor(action string, sep rune) string {
	for _, row := range Layout(sep) {
		for _, b := range row {
			if b.Action == action {
				return b.Label
			}
		}
	}
	return ""
}
