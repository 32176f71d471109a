package tfile

type TGFileOptions func(*tgFile)

func WithName(name string) TGFileOptions {
	return func(f *tgFile) {
		f.name = name
	}
}

func WithNameIfEmpty(name string) TGFileOptions {
	return func(f *tgFile) {
		if f.name == "" {
			f.name = name
		}
	}
}

func WithMIMEType(mimeType string) TGFileOptions {
	return func(f *tgFile) {
		f.mimeType = mimeType
	}
}
