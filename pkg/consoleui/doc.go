// Package consoleui is a terminal implementation of the authform surface
// contract. It keeps field values in memory, renders errors and status
// lines to a writer, and drives interactive field entry with prompts.
//
// # Architecture
//
// Console is the rendering half: one instance per form, implementing
// authform.Surface. It is deliberately dumb, printing exactly what the
// controller tells it to and answering value reads from its store.
//
// Prompter is the input half. It asks for field values through a
// PromptDriver and writes the answers into a Console's store, after which
// the form is ready for Controller.Submit. The default driver uses
// AlecAivazis/survey; tests substitute a scripted driver, so the prompt
// flows run without a terminal.
//
// # Usage
//
//	login := consoleui.New("login")
//	register := consoleui.New("register")
//
//	ctrl, err := authform.NewController(client, login, register,
//		authform.WithTabSurface(consoleui.NewTabs(os.Stdout)),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	prompter := consoleui.NewPrompter()
//	if err := prompter.FillLogin(login); err != nil {
//		log.Fatal(err)
//	}
//	_ = ctrl.Submit(ctx, authform.FormLogin)
package consoleui
