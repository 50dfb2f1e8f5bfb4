package fca_test

import (
	"fmt"

	"github.com/YuminosukeSato/gofca/core/indexset"
	"github.com/YuminosukeSato/gofca/datasets"
	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/pkg/log"
)

func ExampleFormalContext_Up() {
	c := datasets.Animals()

	mammals, _ := c.ObjectSet("Cat", "Dog", "Dolphin")
	fmt.Println(c.AttributeLabels(c.Up(mammals)))
	// Output: [Mammal]
}

func ExampleFormalContext_Closure() {
	c := datasets.ProgrammingLanguages()

	python := indexset.New(0)
	fmt.Println(c.ObjectLabels(c.Closure(python)))
	// Output: [Python JavaScript]
}

func ExampleNextClosureEnumerator_Next() {
	c := datasets.Animals()
	e := fca.NewNextClosureEnumerator(c, fca.WithLogger(log.Nop()))

	a := e.First()
	for i := 0; i < 3; i++ {
		fmt.Println(c.ObjectLabels(a))
		a, _ = e.Next(a)
	}
	// Output:
	// []
	// [Eagle]
	// [Dolphin]
}

func ExampleAnalyze() {
	a, err := fca.Analyze(datasets.Animals(), fca.WithLogger(log.Nop()))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Report.LeftCount, a.Report.RightCount, a.Report.Equal)
	fmt.Println(a.Context.Label(a.Concepts[len(a.Concepts)-2]))
	// Output:
	// 13 13 true
	// ({Cat, Dog, Dolphin}, {Mammal})
}
