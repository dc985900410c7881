package listingtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanHTML_StripsTags(t *testing.T) {
	out := CleanHTML("<p>Welcome to our <em>lovely</em> flat</p>")
	assert.Equal(t, "Welcome to our lovely flat", out)
}

func TestCleanHTML_BreaksOnBrAndBlockCloses(t *testing.T) {
	out := CleanHTML("First line<br>Second line</p>Third line")
	assert.Equal(t, "First line\nSecond line\nThird line", out)
}

func TestCleanHTML_RemovesScriptAndStyle(t *testing.T) {
	out := CleanHTML(`Before<script type="text/javascript">alert("x")</script><style>.a{color:red}</style>After`)
	assert.Equal(t, "BeforeAfter", out)
}

func TestCleanHTML_RemovesComments(t *testing.T) {
	out := CleanHTML("Keep<!-- secret\nnote -->this")
	assert.Equal(t, "Keepthis", out)
}

func TestCleanHTML_DecodesEntities(t *testing.T) {
	out := CleanHTML("Tom &amp; Ana&rsquo;s place &ndash; 5&nbsp;min to beach")
	assert.Contains(t, out, "Tom & Ana")
	assert.NotContains(t, out, "&amp;")
}

func TestCleanHTML_CollapsesWhitespace(t *testing.T) {
	out := CleanHTML("Too    many\t\tspaces<br><br><br><br>and newlines")
	assert.Equal(t, "Too many spaces\n\nand newlines", out)
}

func TestCleanHTML_EmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanHTML(""))
	assert.Equal(t, "", CleanHTML("<p>   </p>"))
}
