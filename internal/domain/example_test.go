package domain_test

import (
	"fmt"

	"typepath.dev/pkg/typepath/internal/domain"
)

func ExampleRender() {
	parser, _ := domain.NewPathParser(domain.DefaultGrammar)

	path, err := parser.Parse("::bufio::Writer")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(domain.Render(path).GoLiteral())
	// Output: [3]string{"::", "bufio", "Writer"}
}

func ExampleConstName() {
	parser, _ := domain.NewPathParser("restricted")

	for _, src := range []string{"crate::foo::private_mod", "::net::http::*", "crate::例::傅"} {
		path, err := parser.Parse(src)
		if err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Println(domain.ConstName(path))
	}
	// Output:
	// PATH_CRATE_FOO_PRIVATE_MOD
	// PATH_ROOT_NET_HTTP_ALL
	// PATH_CRATE_例_傅
}
