package solve_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nonet-solver/nonet/cmd/solve"
)

func TestSolveCommand(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Solve Command Suite")
}

var _ = Describe("ParseBoard", func() {
	It("should fail on empty input", func() {
		_, err := solve.ParseBoard(bytes.NewReader(nil))
		Expect(err).To(HaveOccurred())
	})

	It("should fail on comment-only input", func() {
		_, err := solve.ParseBoard(bytes.NewReader([]byte("# nothing here\n\n")))
		Expect(err).To(HaveOccurred())
	})

	It("should skip comments and blank lines", func() {
		input := "# a tiny board\n\n12..\n34..\n\n....\n....\n"
		rows, err := solve.ParseBoard(bytes.NewReader([]byte(input)))
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(Equal([]string{"12..", "34..", "....", "...."}))
	})

	It("should trim surrounding whitespace", func() {
		rows, err := solve.ParseBoard(bytes.NewReader([]byte("  12..\t\n34..")))
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(Equal([]string{"12..", "34.."}))
	})
})

var _ = Describe("solve command", func() {
	writeBoard := func(content string) string {
		path := filepath.Join(GinkgoT().TempDir(), "board.txt")
		Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
		return path
	}

	run := func(args ...string) error {
		cmd := solve.NewSolveCommand()
		cmd.SetArgs(args)
		cmd.SetOut(GinkgoWriter)
		cmd.SetErr(GinkgoWriter)
		return cmd.Execute()
	}

	It("should fail when the file does not exist", func() {
		Expect(run(filepath.Join(GinkgoT().TempDir(), "missing.txt"))).To(HaveOccurred())
	})

	It("should solve a valid board file", func() {
		path := writeBoard(`# an easy board
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`)
		Expect(run(path)).To(Succeed())
	})

	It("should verify a unique board", func() {
		path := writeBoard(`53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`)
		Expect(run(path, "--verify")).To(Succeed())
	})

	It("should fail on an unsolvable board", func() {
		path := writeBoard(`.1234....
59.......
6........
7........
8........
.........
.........
.........
.........
`)
		Expect(run(path)).To(HaveOccurred())
	})

	It("should fail on a malformed board", func() {
		path := writeBoard("12..\n34..\n")
		Expect(run(path)).To(HaveOccurred())
	})
})
