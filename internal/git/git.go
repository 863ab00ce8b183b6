package git

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

type ChangedFile struct {
	Path         string
	Deleted      bool
	ChangedLines []int
}

// chunk header: @@ -oldStart,oldLen +newStart,newLen @@
// Only the new-side range matters for impact mapping.
var chunkHeader = regexp.MustCompile(`^@@ \-\d+(?:,\d+)? \+(\d+)(?:,(\d+))? @@`)

// ChangedJavaFiles runs git diff against baseRef and returns the Java
// files that changed, with the touched line numbers in the new version.
func ChangedJavaFiles(baseRef string) ([]ChangedFile, error) {
	cmd := exec.Command("git", "diff", "-U0", baseRef)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff failed: %w", err)
	}

	changes, err := parseDiff(output)
	if err != nil {
		return nil, err
	}

	var javaChanges []ChangedFile
	for _, c := range changes {
		if strings.HasSuffix(c.Path, ".java") {
			javaChanges = append(javaChanges, c)
		}
	}
	return javaChanges, nil
}

func parseDiff(output []byte) ([]ChangedFile, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	var changes []ChangedFile
	var current *ChangedFile

	flush := func() {
		if current != nil {
			changes = append(changes, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "diff --git") {
			flush()
			// "diff --git a/path b/path" - the b/ side is the new version.
			parts := strings.Fields(line)
			if len(parts) >= 4 {
				path := strings.TrimPrefix(parts[3], "b/")
				current = &ChangedFile{Path: path}
			}
			continue
		}

		if current == nil {
			continue
		}

		if line == "+++ /dev/null" {
			current.Deleted = true
			continue
		}

		if !strings.HasPrefix(line, "@@") {
			continue
		}

		matches := chunkHeader.FindStringSubmatch(line)
		if len(matches) < 2 {
			continue
		}
		startLine, _ := strconv.Atoi(matches[1])
		count := 1
		if len(matches) > 2 && matches[2] != "" {
			count, _ = strconv.Atoi(matches[2])
		}
		for i := 0; i < count; i++ {
			current.ChangedLines = append(current.ChangedLines, startLine+i)
		}
	}

	flush()
	return changes, scanner.Err()
}
