package tags_test

import (
	"fmt"

	"github.com/matzehuels/wheeltag/pkg/tags"
)

func ExampleParseTag() {
	set, _ := tags.ParseTag("py2.py3-none-any")
	for _, s := range set.Strings() {
		fmt.Println(s)
	}
	// Output:
	// py2-none-any
	// py3-none-any
}

func ExampleParseWheelFilename() {
	set, _ := tags.ParseWheelFilename("pip-18.0-py2.py3-none-any.whl")
	for _, s := range set.Strings() {
		fmt.Println(s)
	}
	// Output:
	// py2-none-any
	// py3-none-any
}

func ExampleSysTags() {
	env := tags.Environment{
		Implementation: "cpython",
		Version:        tags.Version{Major: 3, Minor: 7},
		ABI:            "cp37m",
		OS:             "linux",
		Arch:           "x86_64",
		// A stub probe; hostenv provides a real one.
		GlibcProbe: func(major, minor int) bool { return major == 2 && minor <= 12 },
	}

	seq, _ := tags.SysTags(env)
	for _, t := range seq[:4] {
		fmt.Println(t)
	}
	fmt.Println("...")
	fmt.Println(seq[len(seq)-1])
	// Output:
	// cp37-cp37m-manylinux2010_x86_64
	// cp37-cp37m-manylinux1_x86_64
	// cp37-cp37m-linux_x86_64
	// cp37-abi3-manylinux2010_x86_64
	// ...
	// py30-none-any
}

func ExampleBestMatch() {
	env := tags.Environment{
		Implementation: "cpython",
		Version:        tags.Version{Major: 3, Minor: 7},
		ABI:            "cp37m",
		OS:             "linux",
		Arch:           "x86_64",
	}
	seq, _ := tags.SysTags(env)

	artifact, _ := tags.ParseWheelFilename("gidgethub-3.0.0-py3-none-any.whl")
	rank, tag, ok := tags.BestMatch(seq, artifact)
	fmt.Println(ok, rank >= 0, tag)
	// Output:
	// true true py3-none-any
}
