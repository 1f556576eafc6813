package expand_test

import (
	"fmt"

	"github.com/brianlheim/cxgram/expand"
	"github.com/brianlheim/cxgram/grammar"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleProduction
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A tiny greeting grammar:
//	  S → G ", " N "!"
//	  G → "Hello" (w=3) | "Howdy" (w=1)
//	  N → "world" (w=1) | "gopher" (w=2)
//
// Two rounds expand S: the first rewrites S into the phrase skeleton,
// the second resolves G and N with consecutive xorshift draws. The same
// seed always greets the same way.
func ExampleProduction() {
	s := grammar.Nonterminal("S")
	gSym := grammar.Nonterminal("G")
	n := grammar.Nonterminal("N")

	g, err := grammar.New(s,
		grammar.NewRule(s, gSym, grammar.Terminal(", "), n, grammar.Terminal("!")),
		grammar.NewWeightedRule(3, gSym, grammar.Terminal("Hello")),
		grammar.NewRule(gSym, grammar.Terminal("Howdy")),
		grammar.NewRule(n, grammar.Terminal("world")),
		grammar.NewWeightedRule(2, n, grammar.Terminal("gopher")),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	out, err := expand.Production(g, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// Howdy, gopher!
}

// ExampleExpand_truncated shows the truncate-and-leak contract on a
// grammar that only ever grows: the width guard stops it and the
// surviving non-terminal's name appears in the output.
func ExampleExpand_truncated() {
	s := grammar.Nonterminal("S")
	a := grammar.Terminal("a")

	g, err := grammar.New(s, grammar.NewRule(s, a, s))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := expand.Expand(g, 1, expand.WithMaxFormWidth(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("output=%s truncated=%v rounds=%d\n", res.Output, res.Truncated, res.Rounds)
	// Output:
	// output=aaaaaS truncated=true rounds=5
}
