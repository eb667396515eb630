package cli

import (
	"fmt"
	"io"
)

const (
	pinnedTitle = "Como posso te ajudar?"
	pinnedIntro = "Olá, sou o assistente virtual da Cleazy Cleaning Services e estou aqui para te ajudar. " +
		"Diga em poucas palavras o que deseja. Veja os exemplos abaixo:"
)

var examples = []string{
	"Gostaria de um orçamento para limpeza básica da minha cozinha e banheiro.",
	"Quanto custaria uma limpeza profunda para minha casa com 3 quartos, 2 banheiros e sala de estar?",
	"Quais são os preços para limpeza total da minha lavanderia e escritório?",
	"Gostaria de saber o preço para limpeza de janelas (internas e externas) e limpeza da geladeira.",
	"Tenho uma casa nova e preciso de uma limpeza pós-obra. Pode me informar o custo?",
	"Quais são os descontos disponíveis para serviços recorrentes?",
	"Gostaria de um orçamento para o pacote de limpeza que inclui 2 quartos, sala de TV, sala de jantar, 2 banheiros, lavanderia e cozinha.",
	"Quanto custa para trocar a roupa de cama?",
	"Gostaria de saber o preço para limpeza básica e profunda de todos os cômodos da minha casa.",
	"Pode me fornecer a tabela de preços para cada tipo de limpeza?",
}

// printPinned prints the welcome card with numbered example questions.
// "/examples N" at the chat prompt sends example N.
func printPinned(w io.Writer) {
	fmt.Fprintln(w, titleColor.Sprint(pinnedTitle))
	fmt.Fprintln(w, pinnedIntro)
	for i, e := range examples {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, e)
	}
}

// example returns the n-th (1-based) example question.
func example(n int) (string, bool) {
	if n < 1 || n > len(examples) {
		return "", false
	}
	return examples[n-1], true
}
