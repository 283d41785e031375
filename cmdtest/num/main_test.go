package num

import (
	"flag"
	"testing"

	"github.com/vipcxj/num/cmd"
	"github.com/vipcxj/num/cmdtest"
)

var update = flag.Bool("update", false, "rewrite expectations with actual results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("num", cmd.Execute)
	ts.Run(t, *update)
}
