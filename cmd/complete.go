package cmd

import (
	"github.com/etnz/pricebook/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers a shell completion request and exits. It returns
// immediately when the shell did not ask for completion (COMP_LINE unset).
//
// Install with: COMP_INSTALL=1 pbk
func Complete(name string) {
	completion().Complete(name)
}

func completion() *complete.Command {
	nothing := map[string]complete.Predictor{}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":     predict.Files("*.yaml"),
			"i":          predict.Files("*"),
			"v":          predict.Nothing,
			"raw":        predict.Nothing,
			"log-format": predict.Set{"text", "json"},
		},
		Sub: map[string]*complete.Command{
			"build": {Flags: map[string]complete.Predictor{
				"o":    predict.Files("*.xlsx"),
				"csv":  predict.Files("*.csv"),
				"json": predict.Files("*.json"),
			}},
			"records": {Flags: map[string]complete.Predictor{"returns": predict.Nothing}},
			"latest":  {Flags: nothing},
			"cost": {Flags: map[string]complete.Predictor{
				"yearly": predict.Nothing,
				"y":      predict.Something,
			}},
			"alerts": {Flags: map[string]complete.Predictor{"consecutive": predict.Nothing}},
			"topic":  {Args: complete.PredictFunc(predictTopics)},
		},
	}
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "*")
}
