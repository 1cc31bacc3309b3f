package main

import (
	"git.sr.ht/~rockorager/imgview"
	"git.sr.ht/~rockorager/imgview/vxfw/imageview"
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/text"
)

const help = "q quit  c clear  r redraw"

type model struct {
	view   *imageview.ImageView
	status *text.Text
	// last frame submitted, resubmitted on 'r'
	frame imgview.Buffer
}

func newModel(frame imgview.Buffer) *model {
	status := text.New(help)
	status.Style = vaxis.Style{Attribute: vaxis.AttrDim}
	return &model{
		view:   imageview.New(imgview.Options{}),
		status: status,
		frame:  frame,
	}
}

func (m *model) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Key:
		if ev.Matches('c', vaxis.ModCtrl) || ev.Matches('q') {
			return vxfw.QuitCmd{}, nil
		}
	}
	return nil, nil
}

func (m *model) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vxfw.Init:
		return m.view.Update(m.frame), nil
	case vaxis.Key:
		switch {
		case ev.Matches('c'):
			return m.view.Clear(), nil
		case ev.Matches('r'):
			return m.view.Update(m.frame), nil
		}
	case imageview.UpdateEvent:
		m.frame = ev.Buffer
		return m.view.HandleEvent(ev, ph)
	case imageview.ClearEvent:
		return m.view.HandleEvent(ev, ph)
	}
	return nil, nil
}

func (m *model) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	root := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, m)
	if ctx.Max.Height < 2 {
		return root, nil
	}

	imgCtx := ctx.WithMax(vxfw.Size{
		Width:  ctx.Max.Width,
		Height: ctx.Max.Height - 1,
	})
	img, err := m.view.Draw(imgCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	root.AddChild(0, 0, img)

	status, err := m.status.Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1}))
	if err != nil {
		return vxfw.Surface{}, err
	}
	root.AddChild(0, int(ctx.Max.Height)-1, status)
	return root, nil
}

var _ vxfw.Widget = &model{}
