// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItems(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "mixed markers",
			body: "- dash item\n* star item\n[ ] checkbox item\nplain line\n  - indented\n",
			want: []string{"dash item", "star item", "checkbox item", "indented"},
		},
		{
			name: "checkbox after marker",
			body: "- [ ] open\n- [x] done\n",
			want: []string{"open", "done"},
		},
		{
			name: "empty entries dropped",
			body: "-\n- \n*   \n[ ]\n- kept\n",
			want: []string{"kept"},
		},
		{
			name: "bold and rules are not bullets",
			body: "**Status:** done\n---\n***\n- real\n",
			want: []string{"real"},
		},
		{
			name: "no bullets",
			body: "just prose\nmore prose",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Items(tt.body))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"TASK-001", "TASK-002"}, SplitList(" TASK-001, ,TASK-002 ,"))
	assert.Equal(t, []string{}, SplitList(""))
}
