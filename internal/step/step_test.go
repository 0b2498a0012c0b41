package step

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "Click", want: KindClick},
		{input: "double click", want: KindDoubleClick},
		{input: "dblclick", want: KindDoubleClick},
		{input: "right-click", want: KindRightClick},
		{input: "Type Text", want: KindTypeText},
		{input: "type", want: KindTypeText},
		{input: "key", want: KindKeyPress},
		{input: "WAIT", want: KindWait},
		{input: "move", want: KindMoveMouse},
		{input: "scroll", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		step      Step
		wantField string
	}{
		{name: "click", step: Click(10, 20, 0.5)},
		{name: "double click", step: DoubleClick(1, 2, 0)},
		{name: "right click", step: RightClick(1, 2, 0)},
		{name: "move", step: MoveMouse(0, 0, 0)},
		{name: "type fixed", step: TypeFixed("hello", 0)},
		{name: "type fixed empty text", step: TypeFixed("", 0)},
		{name: "type column", step: TypeColumn("name", 0)},
		{name: "key press", step: KeyPress("enter", 0)},
		{name: "key chord", step: KeyPress("ctrl+c", 0)},
		{name: "wait", step: Wait(2.5, 0)},
		{
			name:      "missing y",
			step:      Step{Action: KindClick, Params: Params{"x": 1}},
			wantField: "y",
		},
		{
			name:      "non-integral x",
			step:      Step{Action: KindClick, Params: Params{"x": 1.5, "y": 2}},
			wantField: "x",
		},
		{
			name:      "string coordinate",
			step:      Step{Action: KindMoveMouse, Params: Params{"x": "10", "y": 2}},
			wantField: "x",
		},
		{
			name:      "negative wait",
			step:      Wait(-1, 0),
			wantField: "seconds",
		},
		{
			name:      "negative delay",
			step:      Click(1, 1, -0.1),
			wantField: "delay",
		},
		{
			name:      "extra key",
			step:      Step{Action: KindKeyPress, Params: Params{"key": "a", "x": 1}},
			wantField: "x",
		},
		{
			name:      "bad text source",
			step:      Step{Action: KindTypeText, Params: Params{"text_source": "Clipboard", "text": "a"}},
			wantField: "text_source",
		},
		{
			name:      "column source without variable",
			step:      TypeColumn(" ", 0),
			wantField: "text",
		},
		{
			name:      "empty key",
			step:      KeyPress("+", 0),
			wantField: "key",
		},
		{
			name:      "unknown action",
			step:      Step{Action: "Scroll", Params: Params{}},
			wantField: "action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.step)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.step, got)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidate_NormalizesJSONNumbers(t *testing.T) {
	var decoded Step
	require.NoError(t, json.Unmarshal([]byte(`{"action":"Click","params":{"x":10,"y":20},"delay":0.5}`), &decoded))

	got, err := Validate(decoded)

	require.NoError(t, err)
	assert.Equal(t, Click(10, 20, 0.5), got)
	x, y := got.Point()
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)
}

func TestValidate_WholeNumberCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		x       any
		wantErr bool
	}{
		{name: "json integer", x: json.Number("10")},
		{name: "json whole float", x: json.Number("10.0")},
		{name: "go whole float", x: 10.0},
		{name: "json fraction", x: json.Number("10.5"), wantErr: true},
		{name: "go fraction", x: 10.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(Step{Action: KindClick, Params: Params{ParamX: tt.x, ParamY: 20}})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			x, _ := got.Point()
			assert.Equal(t, 10, x)
		})
	}
}

func TestParseChord(t *testing.T) {
	assert.Equal(t, []string{"ctrl", "c"}, ParseChord("Ctrl + C"))
	assert.Equal(t, []string{"enter"}, ParseChord("enter"))
	assert.Empty(t, ParseChord("+"))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "x=10, y=20", Describe(Click(10, 20, 0)))
	assert.Equal(t, "Excel:name", Describe(TypeColumn("name", 0)))
	assert.Equal(t, "text=hi", Describe(TypeFixed("hi", 0)))
	assert.Equal(t, "key=ctrl+v", Describe(KeyPress("ctrl+v", 0)))
	assert.Equal(t, "seconds=2.5", Describe(Wait(2.5, 0)))
}
